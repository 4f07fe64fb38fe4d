package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexanderVinarsky/stDBMS/internal/storage"
)

// demoCmd walks the canonical end-to-end scenario: a "products"
// directory with three typed columns, two pages, three files saved,
// directory and first page reloaded and printed.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the products/pages end-to-end example",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		id, err := storage.IntColumn("id")
		if err != nil {
			return err
		}
		name, err := storage.StringColumn("name")
		if err != nil {
			return err
		}
		price, err := storage.FloatColumn("price")
		if err != nil {
			return err
		}

		d, err := storage.NewDirectory("products", []storage.Column{id, name, price})
		if err != nil {
			return err
		}

		page1, err := storage.NewPage("page1", []byte("1|Widget|19.99"))
		if err != nil {
			return err
		}
		page2, err := storage.NewPage("page2", []byte("2|Gadget|29.99"))
		if err != nil {
			return err
		}

		for _, p := range []*storage.Page{page1, page2} {
			if err := d.AddPage(p); err != nil {
				return err
			}
			if err := s.SavePage(p); err != nil {
				return err
			}
		}
		if err := s.SaveDirectory(d); err != nil {
			return err
		}

		loadedDir, err := s.LoadDirectory("products")
		if err != nil {
			return err
		}
		loadedPage, err := s.LoadPage("page1")
		if err != nil {
			return err
		}

		printDirectory(loadedDir)
		fmt.Printf("page: %s\n", loadedPage.Name())
		fmt.Printf("content: %s\n", loadedPage.Content())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
