package palette

import (
	"github.com/dshills/formstorm/internal/element"
	"github.com/dshills/formstorm/internal/geometry"
)

// Category groups components in the library panel.
type Category string

// Component categories, in panel order.
const (
	CategoryFormInputs Category = "Form Inputs"
	CategorySelection  Category = "Selection"
	CategoryAdvanced   Category = "Advanced"
	CategoryLayout     Category = "Layout & UI"
)

// Categories lists the categories in panel order.
var Categories = []Category{CategoryFormInputs, CategorySelection, CategoryAdvanced, CategoryLayout}

// Component is one entry in the component library.
type Component struct {
	Type     element.Type
	Name     string
	Category Category
}

// DefaultSize returns the size a new element of this component gets.
func (c Component) DefaultSize() geometry.Size {
	tr, _ := element.TraitsOf(c.Type)
	return geometry.Size{Width: tr.Width, Height: tr.Height}
}

// catalog is the library in panel order.
var catalog = []Component{
	{element.TypeTextInput, "Text Input", CategoryFormInputs},
	{element.TypeTextarea, "Text Area", CategoryFormInputs},
	{element.TypeEmailInput, "Email", CategoryFormInputs},
	{element.TypePhoneInput, "Phone", CategoryFormInputs},
	{element.TypeNumberInput, "Number", CategoryFormInputs},

	{element.TypeSelect, "Dropdown", CategorySelection},
	{element.TypeCheckbox, "Checkbox", CategorySelection},
	{element.TypeRadio, "Radio", CategorySelection},
	{element.TypeToggle, "Toggle", CategorySelection},

	{element.TypeDatePicker, "Date Picker", CategoryAdvanced},
	{element.TypeFileUpload, "File Upload", CategoryAdvanced},
	{element.TypeRating, "Rating", CategoryAdvanced},
	{element.TypeSlider, "Slider", CategoryAdvanced},
	{element.TypeSignature, "Signature", CategoryAdvanced},

	{element.TypeButton, "Button", CategoryLayout},
	{element.TypeHeading, "Heading", CategoryLayout},
	{element.TypeParagraph, "Paragraph", CategoryLayout},
	{element.TypeDivider, "Divider", CategoryLayout},
	{element.TypeContainer, "Container", CategoryLayout},
	{element.TypeImage, "Image", CategoryLayout},
}
