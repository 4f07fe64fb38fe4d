package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlexanderVinarsky/stDBMS/internal/ddl"
	"github.com/AlexanderVinarsky/stDBMS/internal/storage"
)

var (
	flagDDL     string
	flagColumns string
)

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Create and inspect directory records",
}

var dirCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a directory and save it to the workdir",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDDL != "" && flagColumns != "" {
			return fmt.Errorf("--ddl and --columns are mutually exclusive")
		}

		var cols []storage.Column
		var err error
		switch {
		case flagDDL != "":
			_, cols, err = ddl.ParseColumns(flagDDL)
		case flagColumns != "":
			cols, err = parseColumnArgs(flagColumns)
		}
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		d, err := storage.NewDirectory(args[0], cols)
		if err != nil {
			return err
		}
		return s.SaveDirectory(d)
	},
}

var dirShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a directory's header, schema and page names",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		d, err := s.LoadDirectory(args[0])
		if err != nil {
			return err
		}
		printDirectory(d)
		return nil
	},
}

var dirAddCmd = &cobra.Command{
	Use:   "add [directory] [page]",
	Short: "Append a page's name to a directory and rewrite it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		d, err := s.LoadDirectory(args[0])
		if err != nil {
			return err
		}
		p, err := s.LoadPage(args[1])
		if err != nil {
			return err
		}
		if err := d.AddPage(p); err != nil {
			return err
		}
		return s.SaveDirectory(d)
	},
}

// parseColumnArgs parses the --columns shorthand: "int:id,string:name".
func parseColumnArgs(raw string) ([]storage.Column, error) {
	var cols []storage.Column
	for _, part := range strings.Split(raw, ",") {
		typName, colName, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("bad column %q, want type:name", part)
		}
		typ, err := storage.GetColumnType(typName)
		if err != nil {
			return nil, err
		}
		col, err := storage.NewColumn(typ, colName)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func printDirectory(d *storage.Directory) {
	fmt.Printf("directory: %s\n", d.Name())
	fmt.Printf("pages: %d, columns: %d\n", d.PageCount(), d.ColumnCount())
	for _, col := range d.Columns() {
		fmt.Printf("  column %s\n", col)
	}
	for _, name := range d.PageNames() {
		fmt.Printf("  page %s\n", name)
	}
}

func init() {
	dirCreateCmd.Flags().StringVar(&flagDDL, "ddl", "", "CREATE TABLE statement defining the schema")
	dirCreateCmd.Flags().StringVar(&flagColumns, "columns", "", "schema shorthand: type:name,...")

	dirCmd.AddCommand(dirCreateCmd)
	dirCmd.AddCommand(dirShowCmd)
	dirCmd.AddCommand(dirAddCmd)
	rootCmd.AddCommand(dirCmd)
}
