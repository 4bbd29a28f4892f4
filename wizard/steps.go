package wizard

import (
	"strings"

	"go-traveler-registry/models"
	"go-traveler-registry/validation"
)

// Step is one of the four ordered wizard states.
type Step string

const (
	StepPersonal  Step = "personal"
	StepResidence Step = "residence"
	StepAddress   Step = "address"
	StepContact   Step = "contact"
)

var stepOrder = []Step{StepPersonal, StepResidence, StepAddress, StepContact}

// Field names a single draft field, keyed exactly as the form layer sends it.
type Field string

const (
	FieldGivenName        Field = "given_name"
	FieldFirstSurname     Field = "first_surname"
	FieldSecondSurname    Field = "second_surname"
	FieldNationality      Field = "nationality"
	FieldGender           Field = "gender"
	FieldDocumentType     Field = "document_type"
	FieldDocumentNumber   Field = "document_number"
	FieldDocumentSupport  Field = "document_support"
	FieldBirthDate        Field = "birth_date"
	FieldBirthPlace       Field = "birth_place"
	FieldResidenceCountry Field = "residence_country"
	FieldCity             Field = "city"
	FieldMunicipalityCode Field = "municipality_code"
	FieldPostalCode       Field = "postal_code"
	FieldStreetAddress    Field = "street_address"
	FieldAddressLine2     Field = "address_line2"
	FieldEmail            Field = "email"
	FieldPhoneCountry     Field = "phone_country"
	FieldPhoneNumber      Field = "phone_number"
	FieldAltPhoneCountry  Field = "alt_phone_country"
	FieldAltPhoneNumber   Field = "alt_phone_number"
)

const msgFieldRequired = "this field is required"
const msgSecondSurnameRequired = "second surname is required for this nationality and document type"

// requiredFields returns the required-field set for a step given the draft
// collected so far. Conditional rules live here rather than in the
// validation loop, so additional ones compose without touching it.
func requiredFields(step Step, d models.TravelerDraft) []Field {
	switch step {
	case StepPersonal:
		fields := []Field{
			FieldGivenName, FieldFirstSurname, FieldNationality, FieldGender,
			FieldDocumentType, FieldDocumentNumber, FieldBirthDate,
		}
		if secondSurnameRequired(d) {
			fields = append(fields, FieldSecondSurname)
		}
		return fields
	case StepResidence:
		return []Field{FieldResidenceCountry}
	case StepAddress:
		return []Field{FieldCity, FieldPostalCode, FieldStreetAddress}
	case StepContact:
		return []Field{FieldEmail, FieldPhoneCountry, FieldPhoneNumber}
	}
	return nil
}

// Spanish nationals identified by DNI or NIE always register with both
// surnames; everyone else may leave the second one empty.
func secondSurnameRequired(d models.TravelerDraft) bool {
	if !strings.EqualFold(d.Nationality, "ES") {
		return false
	}
	return d.DocumentType == models.DocumentTypeNationalID ||
		d.DocumentType == models.DocumentTypeForeignResidentID
}

// validateStep runs all checks for one step against the draft and returns the
// per-field error map, empty when the step is clean.
func validateStep(step Step, d models.TravelerDraft) map[Field]string {
	errs := make(map[Field]string)

	for _, f := range requiredFields(step, d) {
		if strings.TrimSpace(fieldValue(d, f)) == "" {
			if f == FieldSecondSurname {
				errs[f] = msgSecondSurnameRequired
			} else {
				errs[f] = msgFieldRequired
			}
		}
	}

	switch step {
	case StepPersonal:
		validatePersonal(d, errs)
	case StepAddress:
		validateAddress(d, errs)
	case StepContact:
		validateContact(d, errs)
	}

	return errs
}

func validatePersonal(d models.TravelerDraft, errs map[Field]string) {
	// the document number can only be checked against a concrete rule once
	// both the type and the nationality are known; until then presence is
	// all we ask for
	if errs[FieldDocumentNumber] == "" && d.DocumentType != "" && d.Nationality != "" {
		if res := validation.ValidateDocument(d.DocumentNumber, d.DocumentType, d.Nationality); !res.Valid {
			errs[FieldDocumentNumber] = res.Message
		}
	}

	if errs[FieldBirthDate] == "" {
		if res := validation.ValidateBirthDate(d.BirthDate); !res.Valid {
			errs[FieldBirthDate] = res.Message
		}
	}
}

func validateAddress(d models.TravelerDraft, errs map[Field]string) {
	// postal format follows where the traveler lives, not their citizenship,
	// hence the residence country picked on the previous step
	if errs[FieldPostalCode] == "" {
		if res := validation.ValidatePostalCode(d.PostalCode, d.ResidenceCountry); !res.Valid {
			errs[FieldPostalCode] = res.Message
		}
	}
}

func validateContact(d models.TravelerDraft, errs map[Field]string) {
	if errs[FieldEmail] == "" {
		if res := validation.ValidateEmail(d.Email); !res.Valid {
			errs[FieldEmail] = res.Message
		}
	}

	if errs[FieldPhoneNumber] == "" {
		if res := validation.ValidatePhone(d.PhoneNumber, d.PhoneCountry); !res.Valid {
			errs[FieldPhoneNumber] = res.Message
		}
	}

	if strings.TrimSpace(d.AltPhoneNumber) != "" {
		if res := validation.ValidatePhone(d.AltPhoneNumber, d.AltPhoneCountry); !res.Valid {
			errs[FieldAltPhoneNumber] = res.Message
		}
	}
}

// fieldValue reads one named field from the draft.
func fieldValue(d models.TravelerDraft, f Field) string {
	switch f {
	case FieldGivenName:
		return d.GivenName
	case FieldFirstSurname:
		return d.FirstSurname
	case FieldSecondSurname:
		return d.SecondSurname
	case FieldNationality:
		return d.Nationality
	case FieldGender:
		return d.Gender
	case FieldDocumentType:
		return string(d.DocumentType)
	case FieldDocumentNumber:
		return d.DocumentNumber
	case FieldDocumentSupport:
		return d.DocumentSupport
	case FieldBirthDate:
		return d.BirthDate
	case FieldBirthPlace:
		return d.BirthPlace
	case FieldResidenceCountry:
		return d.ResidenceCountry
	case FieldCity:
		return d.City
	case FieldMunicipalityCode:
		return d.MunicipalityCode
	case FieldPostalCode:
		return d.PostalCode
	case FieldStreetAddress:
		return d.StreetAddress
	case FieldAddressLine2:
		return d.AddressLine2
	case FieldEmail:
		return d.Email
	case FieldPhoneCountry:
		return d.PhoneCountry
	case FieldPhoneNumber:
		return d.PhoneNumber
	case FieldAltPhoneCountry:
		return d.AltPhoneCountry
	case FieldAltPhoneNumber:
		return d.AltPhoneNumber
	}
	return ""
}

// setFieldValue writes one named field on the draft and reports whether the
// name was recognized.
func setFieldValue(d *models.TravelerDraft, f Field, v string) bool {
	switch f {
	case FieldGivenName:
		d.GivenName = v
	case FieldFirstSurname:
		d.FirstSurname = v
	case FieldSecondSurname:
		d.SecondSurname = v
	case FieldNationality:
		d.Nationality = v
	case FieldGender:
		d.Gender = v
	case FieldDocumentType:
		d.DocumentType = models.DocumentType(v)
	case FieldDocumentNumber:
		d.DocumentNumber = v
	case FieldDocumentSupport:
		d.DocumentSupport = v
	case FieldBirthDate:
		d.BirthDate = v
	case FieldBirthPlace:
		d.BirthPlace = v
	case FieldResidenceCountry:
		d.ResidenceCountry = v
	case FieldCity:
		d.City = v
	case FieldMunicipalityCode:
		d.MunicipalityCode = v
	case FieldPostalCode:
		d.PostalCode = v
	case FieldStreetAddress:
		d.StreetAddress = v
	case FieldAddressLine2:
		d.AddressLine2 = v
	case FieldEmail:
		d.Email = v
	case FieldPhoneCountry:
		d.PhoneCountry = v
	case FieldPhoneNumber:
		d.PhoneNumber = v
	case FieldAltPhoneCountry:
		d.AltPhoneCountry = v
	case FieldAltPhoneNumber:
		d.AltPhoneNumber = v
	default:
		return false
	}
	return true
}
