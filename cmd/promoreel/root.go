package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivlev/promoreel/internal/config"
	"github.com/ivlev/promoreel/internal/director"
	"github.com/ivlev/promoreel/internal/scene"
	"github.com/ivlev/promoreel/internal/source"
	"github.com/ivlev/promoreel/internal/system"
)

// Папка, где ищется самая свежая композиция, если -c не указан
const compositionsDir = "compositions"

// DPI для растеризации логотипа из PDF
const logoDPI = 300

func newRootCommand() *cobra.Command {
	var compositionFlag string

	rootCmd := &cobra.Command{
		Use:           "promoreel",
		Short:         "Рендер промо-ролика по YAML-композиции",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&compositionFlag, "composition", "c", "", "Файл композиции или папка с ними (по умолчанию: самый свежий файл в compositions/ или встроенная)")

	rootCmd.AddCommand(newRenderCommand(&compositionFlag))
	rootCmd.AddCommand(newFrameCommand(&compositionFlag))
	rootCmd.AddCommand(newTimelineCommand(&compositionFlag))
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// resolveComposition возвращает путь к композиции или "" для встроенной
func resolveComposition(flag string) (string, error) {
	path := strings.TrimSpace(flag)
	if path == "" {
		latest, err := system.FindLatestFile(compositionsDir, ".yaml", ".yml")
		// Нет папки или в ней пусто: используем встроенную композицию
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, system.ErrNoMatch) {
			return "", nil
		}
		return latest, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return system.FindLatestFile(path, ".yaml", ".yml")
	}
	return path, nil
}

// loadDirector читает композицию, загружает логотип и строит таймлайн.
// Любая ошибка конфигурации всплывает здесь, до первого кадра.
func loadDirector(flag string, out io.Writer) (*director.Director, string, error) {
	path, err := resolveComposition(flag)
	if err != nil {
		return nil, "", err
	}

	comp := config.DefaultComposition()
	if path != "" {
		comp, err = config.LoadComposition(path)
		if err != nil {
			return nil, "", err
		}
		fmt.Fprintf(out, "[*] Композиция: %s\n", path)
	} else {
		fmt.Fprintln(out, "[*] Композиция не найдена, используется встроенная")
	}

	var assets scene.Assets
	if logo := strings.TrimSpace(comp.Brand.Logo); logo != "" {
		if !filepath.IsAbs(logo) && path != "" {
			logo = filepath.Join(filepath.Dir(path), logo)
		}
		assets.Logo, err = source.LoadLogo(logo, logoDPI)
		if err != nil {
			return nil, "", err
		}
	}

	d, err := director.NewDirector(comp, assets)
	if err != nil {
		return nil, "", err
	}
	return d, path, nil
}
