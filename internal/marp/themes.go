package marp

// Theme describes one theme bundled with the Marp CLI.
type Theme struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BuiltinThemes returns the three themes the Marp CLI ships with. The
// list is static; no renderer invocation is needed to produce it.
func BuiltinThemes() []Theme {
	return []Theme{
		{Name: "default", Description: "Default Marp theme"},
		{Name: "gaia", Description: "Gaia theme - gorgeous and modern"},
		{Name: "uncover", Description: "Uncover theme - clean and minimal"},
	}
}
