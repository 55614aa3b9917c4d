// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/brandcraft/pkg/types"
)

var logoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Render an SVG logo for a brand name",
	Long: `Logo draws a 420x140 SVG with a colored shape mark and the brand name
set in the category's typography. The text color is black or white, whichever
reads better on the primary color.

Styles: circle (default), square, badge, diamond, line.`,
	Args: cobra.NoArgs,
	RunE: runLogo,
}

func init() {
	logoCmd.Flags().String("name", "", "brand name to render (required)")
	logoCmd.Flags().String("color", string(types.DefaultPrimaryColor), "primary color as 3- or 6-digit hex")
	logoCmd.Flags().String("category", "", "business category selecting the typography")
	logoCmd.Flags().String("style", string(types.ShapeCircle), "shape style: "+joinStyles())
	logoCmd.Flags().StringP("out", "o", "", "write the SVG to this file instead of stdout")
	logoCmd.Flags().Bool("json", false, "print the logo as a JSON object")
	_ = logoCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(logoCmd)
}

func joinStyles() string {
	s := make([]string, len(types.ShapeStyles))
	for i, st := range types.ShapeStyles {
		s[i] = string(st)
	}
	return strings.Join(s, ", ")
}

func runLogo(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")
	category, _ := cmd.Flags().GetString("category")
	style, _ := cmd.Flags().GetString("style")
	outPath, _ := cmd.Flags().GetString("out")
	asJSON, _ := cmd.Flags().GetBool("json")

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("--name must not be empty")
	}

	st, err := newStudio()
	if err != nil {
		return err
	}
	logo := st.ComposeLogo(types.LogoRequest{
		Name:         name,
		PrimaryColor: types.ColorHex(color),
		Category:     types.CategoryKey(category),
		Style:        types.ShapeStyle(style),
	})

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(logo.Markup), 0o644); err != nil {
			return fmt.Errorf("writing logo: %w", err)
		}
		logger.Info("logo written", zap.String("path", outPath), zap.String("style", string(logo.Style)))
		return nil
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, logo)
	}
	_, err = fmt.Fprint(out, logo.Markup)
	return err
}
