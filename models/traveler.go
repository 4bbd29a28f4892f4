package models

type DocumentType string

const (
	DocumentTypePassport          DocumentType = "passport"
	DocumentTypeNationalID        DocumentType = "national-id"
	DocumentTypeForeignResidentID DocumentType = "foreign-resident-id"
	DocumentTypeOther             DocumentType = "other"
)

// TravelerDraft is the partially-filled record accumulated across the wizard
// steps. All fields are plain strings as received from the form layer; dates
// use the YYYY-MM-DD layout and countries are ISO 3166-1 alpha-2 codes.
type TravelerDraft struct {
	// personal
	GivenName       string       `json:"given_name"`
	FirstSurname    string       `json:"first_surname"`
	SecondSurname   string       `json:"second_surname,omitempty"`
	Nationality     string       `json:"nationality"`
	Gender          string       `json:"gender"` // e.g., "M", "F", "X"
	DocumentType    DocumentType `json:"document_type"`
	DocumentNumber  string       `json:"document_number"`
	DocumentSupport string       `json:"document_support,omitempty"`
	BirthDate       string       `json:"birth_date"`
	BirthPlace      string       `json:"birth_place,omitempty"`

	// residence
	ResidenceCountry string `json:"residence_country"`

	// address
	City             string `json:"city"`
	MunicipalityCode string `json:"municipality_code,omitempty"`
	PostalCode       string `json:"postal_code"`
	StreetAddress    string `json:"street_address"`
	AddressLine2     string `json:"address_line2,omitempty"`

	// contact
	Email           string `json:"email"`
	PhoneCountry    string `json:"phone_country"`
	PhoneNumber     string `json:"phone_number"`
	AltPhoneCountry string `json:"alt_phone_country,omitempty"`
	AltPhoneNumber  string `json:"alt_phone_number,omitempty"`
}

// Traveler is the finalized record emitted when the wizard submits.
// Id is only set when the wizard was opened to edit an existing traveler,
// so the consumer can tell an update apart from a create.
type Traveler struct {
	Id string `json:"id,omitempty"`
	TravelerDraft
}
