package cli

import (
	"fmt"

	"github.com/costdash/cost-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner prints the welcome banner with version information.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ██████╗ ██████╗ ███████╗████████╗    ██████╗  █████╗ ███████╗██╗  ██╗
        ██╔════╝██╔═══██╗██╔════╝╚══██╔══╝    ██╔══██╗██╔══██╗██╔════╝██║  ██║
        ██║     ██║   ██║███████╗   ██║       ██║  ██║███████║███████╗███████║
        ██║     ██║   ██║╚════██║   ██║       ██║  ██║██╔══██║╚════██║██╔══██║
        ╚██████╗╚██████╔╝███████║   ██║       ██████╔╝██║  ██║███████║██║  ██║
         ╚═════╝ ╚═════╝ ╚══════╝   ╚═╝       ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝
        `
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(blue(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(cyan(fmt.Sprintf("Cost Dashboard CLI (v%s)", formattedVersion)))
}
