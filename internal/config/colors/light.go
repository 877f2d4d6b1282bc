package colors

// Light returns a paper-toned light scheme
func Light() *ColorScheme {
	return &ColorScheme{
		Preset: "light",

		Accent:     "#624C83",
		Background: "#F2ECBC",

		Create: "#6F894E",
		Edit:   "#4D699B",
		Delete: "#C84053",

		ColumnBorder:   "#A09CAC",
		TaskBorder:     "#C7C2A0",
		SelectedBorder: "#597B75",
		SelectedBg:     "#E4D794",

		Title:  "#4D699B",
		Subtle: "#8A8980",
		Normal: "#545464",

		InfoFg:    "#4D699B",
		InfoBg:    "#C7D7E0",
		SuccessFg: "#6F894E",
		SuccessBg: "#DDE6C8",
		ErrorFg:   "#C84053",
		ErrorBg:   "#F5D3D7",

		StatusBarBg:   "#624C83",
		StatusBarText: "#F2ECBC",
	}
}
