package element

// Type identifies a component variant.
type Type string

// Component variants.
const (
	TypeTextInput   Type = "text-input"
	TypeTextarea    Type = "textarea"
	TypeEmailInput  Type = "email-input"
	TypePhoneInput  Type = "phone-input"
	TypeNumberInput Type = "number-input"
	TypeSelect      Type = "select"
	TypeCheckbox    Type = "checkbox"
	TypeRadio       Type = "radio"
	TypeToggle      Type = "toggle"
	TypeDatePicker  Type = "date-picker"
	TypeFileUpload  Type = "file-upload"
	TypeButton      Type = "button"
	TypeHeading     Type = "heading"
	TypeParagraph   Type = "paragraph"
	TypeDivider     Type = "divider"
	TypeContainer   Type = "container"
	TypeImage       Type = "image"
	TypeRating      Type = "rating"
	TypeSlider      Type = "slider"
	TypeSignature   Type = "signature"
)

// Types lists every variant in palette order.
var Types = []Type{
	TypeTextInput,
	TypeTextarea,
	TypeEmailInput,
	TypePhoneInput,
	TypeNumberInput,
	TypeSelect,
	TypeCheckbox,
	TypeRadio,
	TypeToggle,
	TypeDatePicker,
	TypeFileUpload,
	TypeRating,
	TypeSlider,
	TypeSignature,
	TypeButton,
	TypeHeading,
	TypeParagraph,
	TypeDivider,
	TypeContainer,
	TypeImage,
}

// Valid reports whether t is a known variant.
func (t Type) Valid() bool {
	_, ok := traits[t]
	return ok
}

// String returns the wire tag.
func (t Type) String() string {
	return string(t)
}

// Traits describes which settings are meaningful for a variant.
type Traits struct {
	Width       float64
	Height      float64
	Label       bool
	Placeholder bool
	Required    bool
	Options     bool
	DataBearing bool
}

var traits = map[Type]Traits{
	TypeTextInput:   {Width: 320, Height: 72, Label: true, Placeholder: true, Required: true, DataBearing: true},
	TypeTextarea:    {Width: 320, Height: 120, Label: true, Placeholder: true, Required: true, DataBearing: true},
	TypeEmailInput:  {Width: 320, Height: 72, Label: true, Placeholder: true, Required: true, DataBearing: true},
	TypePhoneInput:  {Width: 320, Height: 72, Label: true, Placeholder: true, Required: true, DataBearing: true},
	TypeNumberInput: {Width: 200, Height: 72, Label: true, Placeholder: true, Required: true, DataBearing: true},
	TypeSelect:      {Width: 320, Height: 72, Label: true, Placeholder: true, Required: true, Options: true, DataBearing: true},
	TypeCheckbox:    {Width: 200, Height: 40, Label: true, Required: true, DataBearing: true},
	TypeRadio:       {Width: 200, Height: 40, Label: true, Required: true, Options: true},
	TypeToggle:      {Width: 200, Height: 40, Label: true},
	TypeDatePicker:  {Width: 280, Height: 72, Label: true, Required: true},
	TypeFileUpload:  {Width: 320, Height: 120, Label: true, Required: true},
	TypeButton:      {Width: 160, Height: 44, Label: true},
	TypeHeading:     {Width: 400, Height: 48, Label: true},
	TypeParagraph:   {Width: 400, Height: 72, Label: true},
	TypeDivider:     {Width: 320, Height: 2},
	TypeContainer:   {Width: 400, Height: 300},
	TypeImage:       {Width: 320, Height: 200},
	TypeRating:      {Width: 200, Height: 40, Label: true, Required: true},
	TypeSlider:      {Width: 280, Height: 48, Label: true},
	TypeSignature:   {Width: 320, Height: 150, Label: true, Required: true},
}

// TraitsOf returns the traits of t and whether t is known.
func TraitsOf(t Type) (Traits, bool) {
	tr, ok := traits[t]
	return tr, ok
}
