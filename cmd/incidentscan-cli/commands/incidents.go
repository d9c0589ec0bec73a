// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/l3montree-dev/incidentscan/database/models"
	"github.com/l3montree-dev/incidentscan/shared"
	"github.com/l3montree-dev/incidentscan/utils"
)

func NewIncidentsCommand() *cobra.Command {
	incidents := cobra.Command{
		Use:   "incidents",
		Short: "Inspect stored incidents",
	}
	incidents.AddCommand(newIncidentsListCommand())
	return &incidents
}

func newIncidentsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incidents, newest report date first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := shared.NewIncidentFilter(viper.GetString("from"), viper.GetString("to"), viper.GetString("search"))
			if err != nil {
				return err
			}
			pageInfo := shared.PageInfo{Page: max(viper.GetInt("page"), 1), PageSize: max(viper.GetInt("page-size"), 1)}

			ctx := cmd.Context()
			db, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			paged, err := newIncidentService(db).List(ctx, filter, pageInfo)
			if err != nil {
				return err
			}
			fmt.Println(renderIncidents(paged))
			return nil
		},
	}

	cmd.Flags().String("from", "", "first report date, YYYY-MM-DD")
	cmd.Flags().String("to", "", "last report date, YYYY-MM-DD")
	cmd.Flags().String("search", "", "matches act number, address, nature and commander")
	cmd.Flags().Int("page", 1, "page to show")
	cmd.Flags().Int("page-size", 25, "incidents per page")
	return cmd
}

func renderIncidents(paged shared.Paged[models.Incident]) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"ID", "Date", "Call", "Act", "Address", "Nature", "State"})
	for _, i := range paged.Data {
		tw.AppendRow(table.Row{
			i.ID,
			utils.SafeDereference(i.ReportDate),
			utils.SafeDereference(i.CallTime),
			utils.SafeDereference(i.ActNumber),
			utils.Truncate(utils.SafeDereference(i.Address), 40),
			utils.SafeDereference(i.Nature),
			i.State,
		})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "", fmt.Sprintf("page %d", paged.Page), fmt.Sprintf("%d total", paged.Total)})
	return tw.Render()
}
