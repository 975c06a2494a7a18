package runner

import "github.com/projectdiscovery/gologger"

const version = "v0.1.0"

var banner = `
     _
    (_)__  ___ ________ _    _____ ___ ___ ___
   / / _ \/ _ '/___(_-<| |/|/ / -_) -_) _ \
  /_/_//_/\_, /   /___/|__,__/\__/\__/ .__/
         /___/                      /_/         ` + version + `
`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}
