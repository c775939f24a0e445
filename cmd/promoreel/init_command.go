package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivlev/promoreel/internal/config"
)

func newInitCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Создать пример композиции",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := filepath.Join(compositionsDir, "composition.yaml")
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				target = args[0]
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("файл %s уже существует (используйте --overwrite)", target)
				} else if !os.IsNotExist(err) {
					return err
				}
			}

			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			if err := config.WriteComposition(config.DefaultComposition(), target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "[+++] Композиция сохранена: %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Перезаписать существующий файл")
	return cmd
}
