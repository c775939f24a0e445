package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ivlev/promoreel/internal/director"
)

func newTimelineCommand(compositionFlag *string) *cobra.Command {
	var (
		asYAML bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Показать размещение сегментов на таймлайне",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			d, _, err := loadDirector(*compositionFlag, out)
			if err != nil {
				return err
			}
			sc := d.Scenario()

			if asYAML || output != "" {
				if output == "" {
					output = director.GenerateScenarioPath("timelines")
				}
				if err := director.WriteScenario(sc, output); err != nil {
					return err
				}
				fmt.Fprintf(out, "[+++] Таймлайн сохранен: %s\n", output)
				return nil
			}

			fmt.Fprintln(out, timelineTable(sc))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Сохранить таймлайн в YAML (timelines/timeline_<время>.yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Путь к YAML-файлу таймлайна")

	return cmd
}

func timelineTable(sc *director.Scenario) string {
	headers := []string{"#", "Segment", "Scene", "Start", "End", "Frames", "Seconds"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}

	rows := make([][]string, 0, len(sc.Entries))
	for i, e := range sc.Entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Name,
			e.Scene,
			strconv.Itoa(e.Start),
			strconv.Itoa(e.Start + e.Duration),
			strconv.Itoa(e.Duration),
			fmt.Sprintf("%.2f", e.Length),
		})
	}
	footer := []string{"", "", fmt.Sprintf("%dx%d@%d", sc.Width, sc.Height, sc.FPS), "", "", strconv.Itoa(sc.TotalFrames), fmt.Sprintf("%.2f", sc.Seconds)}

	return renderTable(headers, rows, aligns, footer)
}
