package profile

// Descriptor keys for the built-in profiles. The key doubles as the
// profile's stable name; display text is resolved through a Translator.
const (
	DescriptorDefault          = "LEGACY_DEFAULT"
	DescriptorCoolAndBreezy    = "LEGACY_COOL_AND_BREEZY"
	DescriptorPowersaveExtreme = "LEGACY_POWERSAVE_EXTREME"
)

// builtins is populated once and never mutated. Accessors hand out copies.
var builtins = []Profile{
	{
		Name: DescriptorDefault,
		CPU:  CPUSettings{Governor: "powersave"},
		Fan:  FanSettings{Table: "Balanced"},
		Display: DisplaySettings{
			Brightness:    100,
			UseBrightness: false,
		},
	},
	{
		Name: DescriptorCoolAndBreezy,
		CPU: CPUSettings{
			Governor:     "powersave",
			MaxFrequency: 2000000,
			NoTurbo:      true,
		},
		Fan: FanSettings{Table: "Quiet"},
		Display: DisplaySettings{
			Brightness:    50,
			UseBrightness: true,
		},
	},
	{
		Name: DescriptorPowersaveExtreme,
		CPU: CPUSettings{
			Governor:     "powersave",
			MaxFrequency: 1000000,
			NoTurbo:      true,
			OnlineCores:  2,
		},
		Fan: FanSettings{Table: "Silent", MinimumSpeed: 0},
		Display: DisplaySettings{
			Brightness:    40,
			UseBrightness: true,
		},
	},
}

// Builtins returns a copy of the built-in profile collection.
func Builtins() []Profile {
	return CloneAll(builtins)
}

// IsBuiltinName reports whether name belongs to a built-in profile.
func IsBuiltinName(name string) bool {
	return IndexByName(builtins, name) >= 0
}
