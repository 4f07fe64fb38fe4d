package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/AlexanderVinarsky/stDBMS/internal/store"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive shell over one workdir",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		return runShell(s)
	},
}

func runShell(s *store.Store) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "stdb> ",
		HistoryFile:     defaultHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	fmt.Printf("workdir: %s\n", s.Workdir)
	fmt.Println("type help for commands")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Println("^C")
			continue
		}
		if err != nil {
			// EOF
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		if err := runShellCommand(s, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

func runShellCommand(s *store.Store, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		fmt.Println(`commands:
  ls                 list directories and pages in the workdir
  dir <name>         show a directory's header, schema and page names
  page <name>        show a page's raw content
  row <page> <dir>   decode a page as a row of a directory's schema
  quit               leave the shell`)
		return nil

	case "ls":
		dirs, err := s.Directories()
		if err != nil {
			return err
		}
		pages, err := s.Pages()
		if err != nil {
			return err
		}
		for _, name := range dirs {
			fmt.Printf("dir   %s\n", name)
		}
		for _, name := range pages {
			fmt.Printf("page  %s\n", name)
		}
		return nil

	case "dir":
		if len(args) != 1 {
			return fmt.Errorf("usage: dir <name>")
		}
		d, err := s.LoadDirectory(args[0])
		if err != nil {
			return err
		}
		printDirectory(d)
		return nil

	case "page":
		if len(args) != 1 {
			return fmt.Errorf("usage: page <name>")
		}
		p, err := s.LoadPage(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("content: %s\n", p.Content())
		return nil

	case "row":
		if len(args) != 2 {
			return fmt.Errorf("usage: row <page> <dir>")
		}
		p, err := s.LoadPage(args[0])
		if err != nil {
			return err
		}
		d, err := s.LoadDirectory(args[1])
		if err != nil {
			return err
		}
		return printRow(d, p)

	default:
		return fmt.Errorf("unknown command %q, type help", cmd)
	}
}

func defaultHistoryPath() string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return ".stdb_history"
	}
	return filepath.Join(home, ".stdb_history")
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
