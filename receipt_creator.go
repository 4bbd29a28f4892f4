package main

import (
	"crypto/rsa"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"go-traveler-registry/models"
)

// ReceiptCreator signs the finalized traveler record into a registration
// receipt that the caller hands off to the reporting side.
type ReceiptCreator interface {
	CreateRegistrationReceipt(traveler models.Traveler) (receipt string, err error)
}

func NewJwtReceiptCreator(privateKeyPath string, issuerId string) (*JwtReceiptCreator, error) {
	keyBytes, err := os.ReadFile(privateKeyPath)

	if err != nil {
		return nil, err
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(keyBytes)

	if err != nil {
		return nil, err
	}

	return NewJwtReceiptCreatorFromKey(privateKey, issuerId), nil
}

func NewJwtReceiptCreatorFromKey(privateKey *rsa.PrivateKey, issuerId string) *JwtReceiptCreator {
	return &JwtReceiptCreator{
		issuerId:   issuerId,
		privateKey: privateKey,
	}
}

type JwtReceiptCreator struct {
	privateKey *rsa.PrivateKey
	issuerId   string
}

func (rc *JwtReceiptCreator) CreateRegistrationReceipt(traveler models.Traveler) (string, error) {
	attributes := map[string]string{
		"travelerId":       traveler.Id,
		"givenName":        traveler.GivenName,
		"firstSurname":     traveler.FirstSurname,
		"secondSurname":    traveler.SecondSurname,
		"nationality":      traveler.Nationality,
		"gender":           traveler.Gender,
		"documentType":     string(traveler.DocumentType),
		"documentNumber":   traveler.DocumentNumber,
		"documentSupport":  traveler.DocumentSupport,
		"birthDate":        traveler.BirthDate,
		"birthPlace":       traveler.BirthPlace,
		"residenceCountry": traveler.ResidenceCountry,
		"city":             traveler.City,
		"municipalityCode": traveler.MunicipalityCode,
		"postalCode":       traveler.PostalCode,
		"streetAddress":    traveler.StreetAddress,
		"addressLine2":     traveler.AddressLine2,
		"email":            traveler.Email,
		"phoneCountry":     traveler.PhoneCountry,
		"phoneNumber":      traveler.PhoneNumber,
		"altPhoneCountry":  traveler.AltPhoneCountry,
		"altPhoneNumber":   traveler.AltPhoneNumber,
	}

	claims := jwt.MapClaims{
		"iss":      rc.issuerId,
		"iat":      time.Now().Unix(),
		"sub":      "traveler-registration",
		"traveler": attributes,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(rc.privateKey)
}
