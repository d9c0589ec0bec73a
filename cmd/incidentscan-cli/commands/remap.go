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
	"log/slog"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/l3montree-dev/incidentscan/database/repositories"
)

func NewRemapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remap [--all | <id>...]",
		Short: "Re-run the field mapping on stored raw extractions",
		Long: `Maps the stored raw extraction of each incident again and replaces its root
fields and child rows. Use it after the mapping tables changed. The model is
not called.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := viper.GetBool("all")
			if all == (len(args) > 0) {
				return fmt.Errorf("pass either incident ids or --all")
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if all {
				ids, err = repositories.NewIncidentRepository(db).ListIDs(ctx)
				if err != nil {
					return err
				}
			}

			incidentService := newIncidentService(db)
			actor := viper.GetString("actor")
			bar := progressbar.Default(int64(len(ids)), "remapping")

			failed := 0
			for _, id := range ids {
				result, err := incidentService.Remap(ctx, actor, id)
				switch {
				case err != nil:
					failed++
					slog.Error("could not remap incident", "id", id, "err", err)
				case result.Incomplete():
					slog.Warn("incident remapped without some child rows", "id", id, "childErrors", len(result.ChildErrors))
				}
				bar.Add(1) // nolint: errcheck
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d incidents could not be remapped", failed, len(ids))
			}
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "remap every stored incident")
	cmd.Flags().String("actor", "cli", "name recorded in the audit trail")
	return cmd
}

func parseIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid incident id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
