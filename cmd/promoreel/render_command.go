package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivlev/promoreel/internal/config"
	"github.com/ivlev/promoreel/internal/engine"
	"github.com/ivlev/promoreel/internal/system"
	"github.com/ivlev/promoreel/internal/video"
)

func newRenderCommand(compositionFlag *string) *cobra.Command {
	var (
		output   string
		workers  int
		quality  int
		encoder  string
		stats    bool
		keepTemp bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Отрендерить ролик целиком",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			d, path, err := loadDirector(*compositionFlag, out)
			if err != nil {
				return err
			}

			if encoder == "" {
				encoder = system.GetBestH264Encoder(cmd.Context())
				if encoder != "libx264" {
					fmt.Fprintf(out, "[*] Обнаружено аппаратное ускорение: %s\n", encoder)
				}
			}
			if quality == 0 {
				quality = defaultQuality(encoder)
			}
			if output == "" {
				output = defaultOutputPath(path)
			}
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return err
			}

			cfg := &config.Config{
				CompositionPath: path,
				OutputVideo:     output,
				Workers:         workers,
				VideoEncoder:    encoder,
				Quality:         quality,
				ShowStats:       stats,
				KeepTemp:        keepTemp,
				BuildVersion:    buildVersion,
			}

			project, err := engine.NewVideoProject(cfg, d, &video.FFmpegEncoder{})
			if err != nil {
				return err
			}
			project.Out = out
			return project.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Путь к видео (если пусто, генерируется автоматически в output/)")
	cmd.Flags().IntVar(&workers, "workers", system.DefaultWorkers(), "Потоки (ограничиваются свободной памятью)")
	cmd.Flags().IntVar(&quality, "quality", 0, "Качество видео (0 - авто, x264: CRF 1-51, VideoToolbox: битрейт = Q*100кбит/с)")
	cmd.Flags().StringVar(&encoder, "encoder", "", "Энкодер ffmpeg (по умолчанию: лучший доступный H.264)")
	cmd.Flags().BoolVar(&stats, "stats", false, "Показать отчет о производительности и дописать benchmark.log")
	cmd.Flags().BoolVar(&keepTemp, "keep-temp", false, "Не удалять временные сегменты")

	return cmd
}

func defaultQuality(encoder string) int {
	switch encoder {
	case "h264_videotoolbox":
		return 75 // Хорошее качество для VideoToolbox
	case "h264_nvenc":
		return 28 // Эквивалент CRF для NVENC
	default:
		return 23 // Стандартный CRF для x264
	}
}

func defaultOutputPath(compositionPath string) string {
	name := "promoreel"
	if compositionPath != "" {
		base := filepath.Base(compositionPath)
		name = strings.ReplaceAll(strings.TrimSuffix(base, filepath.Ext(base)), " ", "_")
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join("output", fmt.Sprintf("%s_%s.mp4", name, timestamp))
}
