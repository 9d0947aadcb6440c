package types

// AddressValidationRequest is posted to the address validation endpoint.
type AddressValidationRequest struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// Coordinates of a matched address as returned by the geocoder.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AddressValidationResponse reports whether the address could be matched.
type AddressValidationResponse struct {
	Valid            bool         `json:"valid"`
	FormattedAddress string       `json:"formatted_address,omitempty"`
	Coordinates      *Coordinates `json:"coordinates,omitempty"`
	Message          string       `json:"message,omitempty"`
}

// UtilityInfo is the result of a utility-by-ZIP lookup.
type UtilityInfo struct {
	Found   bool    `json:"found"`
	Utility Utility `json:"utility,omitempty"`
	City    string  `json:"city,omitempty"`
	ZipCode string  `json:"zip_code,omitempty"`
	Message string  `json:"message,omitempty"`
}

// SubscriberData is the enrollment payload. Optional fields are omitted
// when empty rather than sent as empty strings.
type SubscriberData struct {
	FirstName            string            `json:"first_name"`
	LastName             string            `json:"last_name"`
	Email                string            `json:"email,omitempty"`
	Phone                string            `json:"phone,omitempty"`
	Address              string            `json:"address"`
	City                 string            `json:"city"`
	State                string            `json:"state"`
	ZipCode              string            `json:"zip_code"`
	Utility              Utility           `json:"utility"`
	UtilityAccountNumber string            `json:"utility_account_number,omitempty"`
	AssistanceProgram    AssistanceProgram `json:"assistance_program,omitempty"`
}

// Subscriber is a stored enrollment as returned by the backend.
type Subscriber struct {
	SubscriberData
	ID               SubscriberID `json:"id"`
	AddressValidated bool         `json:"address_validated"`
	FormattedAddress string       `json:"formatted_address,omitempty"`
	CreatedAt        string       `json:"created_at"`
}

// SubscriberCreateResponse is returned by the enrollment endpoint.
type SubscriberCreateResponse struct {
	Success      bool                `json:"success"`
	SubscriberID SubscriberID        `json:"subscriber_id,omitempty"`
	Message      string              `json:"message,omitempty"`
	Data         *Subscriber         `json:"data,omitempty"`
	Errors       map[string][]string `json:"errors,omitempty"`
}

// SubscriberList is one page of subscribers.
type SubscriberList struct {
	Count    int          `json:"count"`
	Next     string       `json:"next,omitempty"`
	Previous string       `json:"previous,omitempty"`
	Results  []Subscriber `json:"results"`
}

// SubscriberPatch is a partial update; nil fields are left untouched.
type SubscriberPatch struct {
	FirstName            *string            `json:"first_name,omitempty"`
	LastName             *string            `json:"last_name,omitempty"`
	Address              *string            `json:"address,omitempty"`
	City                 *string            `json:"city,omitempty"`
	State                *string            `json:"state,omitempty"`
	ZipCode              *string            `json:"zip_code,omitempty"`
	Utility              *Utility           `json:"utility,omitempty"`
	UtilityAccountNumber *string            `json:"utility_account_number,omitempty"`
	AssistanceProgram    *AssistanceProgram `json:"assistance_program,omitempty"`
}

// HealthStatus is the backend health probe response.
type HealthStatus struct {
	Status string `json:"status"`
}
