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
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/l3montree-dev/incidentscan/common"
	"github.com/l3montree-dev/incidentscan/extraction"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/imaging"
	"github.com/l3montree-dev/incidentscan/services"
)

func NewExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <image>...",
		Short: "Extract a form from photos without storing it",
		Long: `Normalizes the given photos, sends them to the configured model and prints
every field of the schema version. Nothing is written to the database.`,
		Example: `  incidentscan-cli extract front.jpg back.jpg
  incidentscan-cli extract --schema-version v1 --json form.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cliConfig()
			sources, err := readImages(args)
			if err != nil {
				return err
			}

			extractionService := services.NewExtractionService(
				services.NewImageNormalizer(cfg),
				services.NewExtractionClient(cfg, common.NewOutgoingHTTPClient()),
				cfg,
			)

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			s.Suffix = fmt.Sprintf(" extracting %d image(s) with %s", len(sources), cfg.Model)
			s.Start()
			doc, err := extractionService.Extract(cmd.Context(), cfg.SchemaVersion, sources)
			s.Stop()
			if err != nil {
				return fmt.Errorf("%s: %w", failures.UserMessage(failures.KindOf(err)), err)
			}

			if viper.GetBool("json") {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}

			spec, err := extraction.Lookup(doc.SchemaVersion)
			if err != nil {
				return err
			}
			fmt.Println(renderDocument(spec, doc))
			for _, w := range doc.Warnings {
				fmt.Fprintln(os.Stderr, text.FgYellow.Sprint("warning: ")+w)
			}
			return nil
		},
	}

	cmd.Flags().String("schema-version", "", "field specification to extract (default: EXTRACTION_SCHEMA_VERSION)")
	cmd.Flags().String("model", "", "model name (default: EXTRACTION_MODEL)")
	cmd.Flags().Duration("timeout", 0, "upstream timeout (default: EXTRACTION_TIMEOUT)")
	cmd.Flags().Bool("json", false, "print the reconciled document as json")
	return cmd
}

func readImages(paths []string) ([]imaging.Source, error) {
	sources := make([]imaging.Source, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", p, err)
		}
		sources = append(sources, imaging.Source{Name: filepath.Base(p), Data: data})
	}
	return sources, nil
}

// longer values are wrapped, the table must still fit a terminal
const maxValueWidth = 60

func renderDocument(spec *extraction.FieldSpec, doc extraction.Document) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Field", "Key", "Value"})

	for _, f := range spec.Fields {
		tw.AppendRow(table.Row{f.Label, f.Key, renderValue(f, doc.Fields[f.Key])})
	}
	for _, key := range slices.Sorted(maps.Keys(doc.Unknown)) {
		tw.AppendRow(table.Row{text.FgYellow.Sprint("(unknown)"), key, text.WrapSoft(string(doc.Unknown[key]), maxValueWidth)})
	}

	tw.AppendFooter(table.Row{"", "filled", fmt.Sprintf("%d/%d", doc.FilledFields(), len(spec.Fields))})
	return tw.Render()
}

func renderValue(f extraction.FieldDef, val json.RawMessage) string {
	if extraction.IsNull(val) {
		return "-"
	}
	switch f.Kind {
	case extraction.FieldArray:
		var rows []json.RawMessage
		if err := json.Unmarshal(val, &rows); err == nil {
			return fmt.Sprintf("%d row(s)", len(rows))
		}
	case extraction.FieldString, extraction.FieldDate, extraction.FieldTime:
		var s string
		if err := json.Unmarshal(val, &s); err == nil {
			return text.WrapSoft(s, maxValueWidth)
		}
	}
	return text.WrapSoft(string(val), maxValueWidth)
}
