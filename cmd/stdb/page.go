package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlexanderVinarsky/stDBMS/internal/record"
	"github.com/AlexanderVinarsky/stDBMS/internal/storage"
)

var (
	flagContent string
	flagRow     string
	flagPageDir string
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Create and inspect page records",
}

var pageCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a page and save it to the workdir",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		payload := []byte(flagContent)
		if flagRow != "" {
			if flagPageDir == "" {
				return fmt.Errorf("--row needs --dir to resolve the schema")
			}
			d, err := s.LoadDirectory(flagPageDir)
			if err != nil {
				return err
			}
			payload, err = encodeRowArgs(d.Columns(), flagRow)
			if err != nil {
				return err
			}
		}

		p, err := storage.NewPage(args[0], payload)
		if err != nil {
			return err
		}
		return s.SavePage(p)
	},
}

var pageShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a page's name and content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		p, err := s.LoadPage(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("page: %s\n", p.Name())
		if flagPageDir == "" {
			fmt.Printf("content: %s\n", p.Content())
			return nil
		}

		d, err := s.LoadDirectory(flagPageDir)
		if err != nil {
			return err
		}
		return printRow(d, p)
	},
}

// encodeRowArgs converts comma-separated CLI values into typed values
// per the schema, then encodes them as page content.
func encodeRowArgs(cols []storage.Column, raw string) ([]byte, error) {
	fields := strings.Split(raw, ",")
	if len(fields) != len(cols) {
		return nil, fmt.Errorf("schema has %d columns, got %d values", len(cols), len(fields))
	}

	values := make([]any, len(fields))
	for i, field := range fields {
		switch cols[i].Type {
		case storage.ColumnInt:
			x, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", cols[i].Name(), err)
			}
			values[i] = x
		case storage.ColumnFloat:
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", cols[i].Name(), err)
			}
			values[i] = x
		default:
			values[i] = field
		}
	}
	return record.EncodeRow(cols, values)
}

func printRow(d *storage.Directory, p *storage.Page) error {
	cols := d.Columns()
	values, err := record.DecodeRow(cols, p.Content())
	if err != nil {
		return err
	}
	for i, col := range cols {
		fmt.Printf("%s (%s): %v\n", col.Name(), col.Type, values[i])
	}
	return nil
}

func init() {
	pageCreateCmd.Flags().StringVar(&flagContent, "content", "", "raw page content")
	pageCreateCmd.Flags().StringVar(&flagRow, "row", "", "comma-separated row values, typed against --dir's schema")
	pageCreateCmd.Flags().StringVar(&flagPageDir, "dir", "", "directory whose schema types the row")
	pageShowCmd.Flags().StringVar(&flagPageDir, "dir", "", "decode content as a row of this directory's schema")

	pageCmd.AddCommand(pageCreateCmd)
	pageCmd.AddCommand(pageShowCmd)
	rootCmd.AddCommand(pageCmd)
}
