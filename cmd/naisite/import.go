package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nurseassist/naisite"
	"github.com/nurseassist/naisite/content"
	"github.com/nurseassist/naisite/markdown"
)

var importDir string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Upsert markdown articles into the site database",
	Long: `Reads every *.md file in --dir (YAML front matter plus a markdown body)
and saves it to the database, replacing stored articles with the same slug.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := importArticles(cmd.Context(), importDir, viper.GetString("database_path"))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d articles\n", n)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importDir, "dir", "content/articles", "directory of markdown articles")
}

func importArticles(ctx context.Context, dir, dbPath string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return 0, err
	}
	sort.Strings(files)

	store, err := naisite.NewStore(dbPath)
	if err != nil {
		return 0, fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			return 0, err
		}
		a, err := content.ParseArticle(raw, filepath.Base(f))
		if err != nil {
			return 0, fmt.Errorf("parse %s: %w", f, err)
		}
		if a.ReadTime == "" {
			a.ReadTime = markdown.ReadingTime(a.Body)
		}
		if err := store.SaveArticle(ctx, a); err != nil {
			return 0, fmt.Errorf("save %s: %w", a.Slug, err)
		}
		logger.Debug("imported article", zap.String("slug", a.Slug))
	}
	return len(files), nil
}
