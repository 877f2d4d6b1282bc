package layers

const (
	ModalDefaultWidthDivisor = 2
	ModalScreenMargin        = 2 // keep a column free on each side

	FormMinWidth = 50
	FormMaxWidth = 80

	HelpMinWidth = 50
	HelpMaxWidth = 70

	DetailMinWidth = 50
	DetailMaxWidth = 90

	ConfirmWidth = 50
)
