package commands

import "github.com/mamaar/gocalc/internal/cli"

// Register adds every gocalc command to runner
func Register(runner *cli.Runner) {
	runner.RegisterCommand("repl", ReplCommand)
	runner.RegisterCommand("eval", EvalCommand)
	runner.RegisterCommand("run", RunCommand)
	runner.RegisterCommand("watch", WatchCommand)
	runner.RegisterCommand("keys", KeysCommand)
	runner.RegisterCommand("help", HelpCommand)
	runner.RegisterCommand("version", VersionCommand)
}
