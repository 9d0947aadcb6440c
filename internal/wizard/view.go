package wizard

import (
	"solarenroll/internal/domain"
	"solarenroll/internal/fields"
)

// FieldView is what a presentation layer needs to render one field.
type FieldView struct {
	Name        Field
	Label       string
	Value       string
	Placeholder string
	Helper      string
	Error       string
	Required    bool
	ReadOnly    bool
}

// Fields describes the fields of the current step in display order. Missing
// required fields are only flagged after a refused Next; an account number
// that breaks its utility's rule is flagged as soon as it is typed.
func (w *Wizard) Fields() []FieldView {
	r := w.record
	var out []FieldView
	switch w.step {
	case StepPersonal:
		out = []FieldView{
			{Name: FieldFirstName, Label: "First Name", Value: r.FirstName, Placeholder: "Enter your first name", Required: true},
			{Name: FieldLastName, Label: "Last Name", Value: r.LastName, Placeholder: "Enter your last name", Required: true},
			{Name: FieldEmail, Label: "Email", Value: r.Email, Placeholder: "Enter your email address", Required: w.opts.RequireEmail},
			{Name: FieldPhone, Label: "Phone Number (optional)", Value: r.Phone, Placeholder: "111-111-1111"},
		}
	case StepAddress:
		utility := FieldView{
			Name:     FieldUtility,
			Label:    "Electric Utility",
			Value:    string(r.Utility),
			ReadOnly: true,
			Required: true,
		}
		if r.Utility != domain.UtilityNone {
			utility.Value = fields.UtilityDisplayName(r.Utility)
			utility.Helper = "Utility found for your ZIP code"
		} else {
			utility.Placeholder = fields.UtilityPlaceholder
			if fields.IsLookupZip(r.ZipCode) && w.zipResolved {
				utility.Helper = "No utility information available for this ZIP code"
			}
		}
		out = []FieldView{
			{Name: FieldAddress, Label: "Street Address", Value: r.Address, Placeholder: "123 Main Street", Required: true, Helper: w.addressHelper()},
			{Name: FieldCity, Label: "City", Value: r.City, Placeholder: "Newark", Required: true},
			{Name: FieldState, Label: "State", Value: r.State, ReadOnly: true, Required: true},
			{Name: FieldZipCode, Label: "ZIP Code", Value: r.ZipCode, Placeholder: "07102", Required: true},
			utility,
		}
	case StepUtility:
		placeholder, helper := fields.AccountNumberHint(r.Utility)
		out = []FieldView{
			{Name: FieldUtility, Label: "Electric Utility", Value: fields.UtilityDisplayName(r.Utility), ReadOnly: true},
			{Name: FieldAccountNumber, Label: "Utility Account Number", Value: r.UtilityAccountNumber, Placeholder: placeholder, Helper: helper},
			{
				Name:        FieldAssistanceProgram,
				Label:       "Assistance Program",
				Value:       string(r.AssistanceProgram),
				Placeholder: "None",
				Helper:      "Medicare, SNAP, or leave blank for none",
			},
		}
	default:
		return nil
	}

	errs := w.Validate(w.step)
	for i := range out {
		msg, ok := errs[out[i].Name]
		if !ok {
			continue
		}
		if w.showErrors || out[i].Name == FieldAccountNumber {
			out[i].Error = msg
		}
	}
	return out
}

func (w *Wizard) addressHelper() string {
	if w.record.AddressValidated {
		if w.record.FormattedAddress != "" {
			return "Address validated: " + w.record.FormattedAddress
		}
		return "Address validated"
	}
	return w.addrMessage
}
