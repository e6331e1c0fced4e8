package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const (
	author    = "Maik Broemme <mbroemme@plusserver.de>"
	bugReport = "mbroemme@plusserver.de"
)

// versionText returns the --version output
func versionText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{{.Name}} (fluxnation) %s %s\n", version, release)
	fmt.Fprintf(&b, "Written by %s\n", author)
	b.WriteString("\n")
	b.WriteString("This is free software; see the source for copying conditions.  There is NO\n")
	b.WriteString("warranty; not even for MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.\n")
	return b.String()
}

// setRootHelp replaces the help of the root command with the grouped
// layout; subcommands keep the cobra help
func setRootHelp(root *cobra.Command) {
	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != root {
			defaultHelp(cmd, args)
			return
		}
		writeUsage(cmd.OutOrStdout(), programName())
	})
}

func writeUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: %s [OPTION]...\n", name)
	fmt.Fprintf(w, "       %s COMMAND [OPTION]...\n", name)
	fmt.Fprintf(w, "Set focus on another window. (Example: %s --next-window)\n", name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[main]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -h, --help\t\tshows this help screen")
	fmt.Fprintln(w, "  -v, --version\t\tshows the version information")
	fmt.Fprintln(w, "  -d, --debug\t\tshows many debug information")
	fmt.Fprintln(w, "  -q, --quiet\t\tshows nothing")
	fmt.Fprintln(w, "      --json\t\tprints results as JSON")
	fmt.Fprintln(w, "      --no-color\tdisables colored output")
	fmt.Fprintln(w, "      --config FILE\treads settings from FILE")
	fmt.Fprintln(w, "      --display NAME\tconnects to X display NAME")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[window]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -n, --next-window\tswitch to next window on active desktop")
	fmt.Fprintln(w, "  -p, --prev-window\tswitch to previous window on active desktop")
	fmt.Fprintln(w, "      --next-desktop\tswitch to next workspace on active screen")
	fmt.Fprintln(w, "      --prev-desktop\tswitch to previous workspace on active screen")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[commands]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  list\t\t\tlists the windows on the active desktop")
	fmt.Fprintln(w, "  desktops\t\tshows the active desktop and the desktop count")
	fmt.Fprintln(w, "  config show|init\tprints or creates the config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Please report bugs to the appropriate authors, which can be found in the")
	fmt.Fprintf(w, "version information. All other things can be send to <%s>\n", bugReport)
}
