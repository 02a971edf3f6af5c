package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neume-network/schema/internal/config"
	"github.com/neume-network/schema/internal/logging"
	"github.com/neume-network/schema/internal/mimetype"
)

const defaultPatternIdent = "mimetypePattern"

func newMimetypesCommand(ctx *commandContext) *cobra.Command {
	var (
		registryPath string
		registryURL  string
		outPath      string
		pkg          string
		ident        string
		categories   []string
		accept       []string
		reject       []string
	)

	cmd := &cobra.Command{
		Use:   "mimetypes",
		Short: "Generate the manifestation mimetype pattern from mime-db",
		Long: "Reads the mime-db registry from a local file or URL, keeps the configured " +
			"top-level categories and writes a Go source file declaring the pattern constant.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			logger = logger.With(logging.FieldComponent, "mimetypes")

			reg, source, err := loadRegistry(cmd.Context(), cfg, registryPath, registryURL)
			if err != nil {
				return err
			}
			logger.Debug("registry loaded", "source", source, "entries", len(reg))

			if len(categories) == 0 {
				categories = cfg.Registry.Categories
			}
			genOpts := []mimetype.Option{mimetype.WithCategories(categories...)}
			if cmd.Flags().Changed("accept") || cmd.Flags().Changed("reject") {
				genOpts = append(genOpts, mimetype.WithSelfCheck(accept, reject))
			}
			pattern, err := mimetype.Generate(reg, genOpts...)
			if err != nil {
				return err
			}

			if pkg == "" {
				pkg = cfg.Output.Package
			}
			src, err := mimetype.RenderGoSource(pkg, ident, pattern)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = cfg.Output.MimetypeFile
			}
			if outPath == "-" {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}
			if err := mimetype.WriteFile(outPath, src); err != nil {
				return err
			}
			logger.Info("pattern written",
				"path", outPath,
				"types", len(mimetype.Select(reg, categories)),
				"categories", strings.Join(categories, ","),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&registryPath, "registry", "", "Local mime-db db.json path")
	cmd.Flags().StringVar(&registryURL, "url", "", "mime-db db.json URL")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output Go file, - for stdout")
	cmd.Flags().StringVar(&pkg, "package", "", "Package name of the generated file")
	cmd.Flags().StringVar(&ident, "ident", defaultPatternIdent, "Name of the generated constant")
	cmd.Flags().StringSliceVar(&categories, "categories", nil, "Top-level media types to include")
	cmd.Flags().StringSliceVar(&accept, "accept", nil, "Media types the pattern must match (replaces the default check)")
	cmd.Flags().StringSliceVar(&reject, "reject", nil, "Media types the pattern must not match (replaces the default check)")
	return cmd
}

// loadRegistry prefers explicit flags over configuration, and a local path
// over a URL at each level.
func loadRegistry(ctx context.Context, cfg *config.Config, path, url string) (mimetype.Registry, string, error) {
	switch {
	case path != "":
		reg, err := mimetype.LoadRegistry(path)
		return reg, path, err
	case url != "":
		reg, err := fetchRegistry(ctx, cfg, url)
		return reg, url, err
	case cfg.Registry.Path != "":
		reg, err := mimetype.LoadRegistry(cfg.Registry.Path)
		return reg, cfg.Registry.Path, err
	case cfg.Registry.URL != "":
		reg, err := fetchRegistry(ctx, cfg, cfg.Registry.URL)
		return reg, cfg.Registry.URL, err
	}
	return nil, "", fmt.Errorf("mimetypes: no registry path or url configured")
}

func fetchRegistry(ctx context.Context, cfg *config.Config, url string) (mimetype.Registry, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	client := &http.Client{Timeout: cfg.RegistryTimeout()}
	return mimetype.FetchRegistry(ctx, client, url)
}
