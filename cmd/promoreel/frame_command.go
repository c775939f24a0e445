package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/ivlev/promoreel/internal/engine"
)

func newFrameCommand(compositionFlag *string) *cobra.Command {
	var (
		at      int
		seconds float64
		output  string
	)

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Сохранить один кадр в PNG (для предпросмотра)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			d, _, err := loadDirector(*compositionFlag, out)
			if err != nil {
				return err
			}

			frame := at
			if cmd.Flags().Changed("seconds") {
				if cmd.Flags().Changed("at") {
					return fmt.Errorf("укажите либо --at, либо --seconds")
				}
				frame = int(math.Round(seconds * float64(d.FPS())))
			}
			if output == "" {
				output = fmt.Sprintf("frame_%05d.png", frame)
			}

			if err := engine.RenderFrame(d, output, frame); err != nil {
				return err
			}

			name := "-"
			if active := d.Timeline().Active(frame); len(active) > 0 {
				name = fmt.Sprintf("%s +%d", active[0].Name, active[0].Local(frame))
			}
			fmt.Fprintf(out, "[+++] Кадр %d (%s) сохранен: %s\n", frame, name, output)
			return nil
		},
	}

	cmd.Flags().IntVar(&at, "at", 0, "Глобальный номер кадра")
	cmd.Flags().Float64Var(&seconds, "seconds", 0, "Время в секундах вместо номера кадра")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Путь к PNG (по умолчанию frame_NNNNN.png)")

	return cmd
}
