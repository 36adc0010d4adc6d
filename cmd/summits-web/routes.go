package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/summitlog/summits-web/internal/bootstrap"
	"github.com/summitlog/summits-web/internal/domain/route"
)

func routesCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := bootstrap.LoadRoutes(file)
			if err != nil {
				return err
			}
			return printRoutes(cmd.OutOrStdout(), table)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "route table YAML (defaults to the embedded table)")
	return cmd
}

func printRoutes(out io.Writer, table *route.Table) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tTITLE\tAUTH")
	for _, rt := range table.Routes() {
		auth := "-"
		if rt.Meta.RequiresAuth {
			auth = "required"
		}
		title := rt.Meta.Title
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rt.Name, rt.Path, title, auth)
	}
	return tw.Flush()
}
