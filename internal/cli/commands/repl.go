package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/saju/internal/cli/output"
	"github.com/leapstack-labs/saju/pkg/core"
	"github.com/leapstack-labs/saju/pkg/saju"
)

const replPrompt = "saju> "

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Compute charts interactively",
		Long: `Start an interactive prompt. Each line is a birth moment in the same form
calc accepts ("1971-11-17 04:00", optionally followed by "lunar" and "leap").

Dot-commands:
  .lunar [on|off]  Treat dates as lunar by default
  .help            Show help
  .quit / .exit    Exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
	return cmd
}

func runREPL(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	historyFile := ""
	if dir, err := os.UserCacheDir(); err == nil {
		historyFile = filepath.Join(dir, "saju", "repl_history")
		_ = os.MkdirAll(filepath.Dir(historyFile), 0o750)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r := cmdCtx.Renderer
	r.Println("saju REPL")
	r.Println("Type a birth moment (YYYY-MM-DD HH:MM), .help for commands, .quit to exit")
	r.Println("")

	session := &replSession{engine: cmdCtx.Engine, r: r}
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if session.eval(line) {
			break
		}
	}
	return nil
}

// replSession holds the state of one interactive session.
type replSession struct {
	engine *saju.Engine
	r      *output.Renderer
	lunar  bool
}

// eval handles one input line and reports whether the session should end.
func (s *replSession) eval(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return s.dotCommand(line)
	}

	if s.lunar && !mentionsCalendar(line) {
		line += " lunar"
	}
	m, err := core.ParseMoment(line)
	if err != nil {
		s.fail(line, err)
		return false
	}

	chart, err := s.engine.Calculate(m)
	if err != nil {
		s.fail(line, err)
		return false
	}
	if err := s.r.Chart(chart); err != nil {
		s.fail(line, err)
	}
	s.r.Println("")
	return false
}

func (s *replSession) dotCommand(line string) bool {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.r.Writer())

	case ".lunar":
		switch {
		case len(parts) == 1:
			s.lunar = !s.lunar
		case parts[1] == "on":
			s.lunar = true
		case parts[1] == "off":
			s.lunar = false
		default:
			s.r.Error("usage: .lunar [on|off]")
			return false
		}
		mode := "solar"
		if s.lunar {
			mode = "lunar"
		}
		s.r.Muted("dates are " + mode + " by default")

	default:
		s.r.Error(fmt.Sprintf("unknown command: %s (type .help for commands)", parts[0]))
	}
	return false
}

func (s *replSession) fail(input string, err error) {
	if s.r.EffectiveMode() == output.ModeJSON {
		_ = s.r.JSON(output.ErrorOutput{Input: input, Error: err.Error()})
		return
	}
	s.r.Error(err.Error())
}

// mentionsCalendar reports whether the line names its calendar explicitly.
func mentionsCalendar(line string) bool {
	for _, f := range strings.Fields(strings.ToLower(line)) {
		switch f {
		case "lunar", "음력", "solar", "양력":
			return true
		}
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Input:
  1971-11-17 04:00          Solar (Gregorian) birth moment
  2023-02-01 10:30 lunar    Lunar date
  2023-02-01 10:30 lunar leap
                            Lunar date in the leap month

Commands:
  .lunar [on|off]  Treat dates without a calendar word as lunar
  .help            Show this help message
  .quit / .exit    Exit the REPL
`
	_, _ = fmt.Fprintln(w, help)
}

func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".lunar", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
