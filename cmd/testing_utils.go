package cmd

// ResetGlobalState resets all cipher command global variables to their default values for testing.
func ResetGlobalState() {
	resetCipherFlags(RouteCmd, &routeFlags)
	resetCipherFlags(GronsfeldCmd, &gronsfeldFlags)
	ResetConfigState()
	configPath = ""
}
