package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davrell/kinsite/internal/utils"
)

// InitOptions captures options for scaffolding a new site project
type InitOptions struct {
	Name     string
	Title    string // optional site title; defaults to Name
	Language string // default: en
	DataFile string // default: data/tree.xml
	BuildDir string // default: site
}

// Init scaffolds a new site project at the given directory
func Init(opts InitOptions) error {
	if opts.Name == "" {
		opts.Name = "my-tree"
	}
	if opts.Title == "" {
		opts.Title = opts.Name
	}
	if opts.Language == "" {
		opts.Language = "en"
	}
	if opts.DataFile == "" {
		opts.DataFile = "data/tree.xml"
	}
	if opts.BuildDir == "" {
		opts.BuildDir = "site"
	}

	root := opts.Name

	if err := utils.CreateDirAll(root); err != nil {
		return err
	}
	if err := utils.CreateDirAll(filepath.Join(root, filepath.Dir(opts.DataFile))); err != nil {
		return err
	}
	if err := utils.CreateDirAll(filepath.Join(root, "data", "media")); err != nil {
		return err
	}

	siteToml := []byte(fmt.Sprintf(`[site]
title = "%s"
language = "%s"
data-file = "%s"
media-dir = "data/media"

[build]
build-dir = "%s"

[report]
thumbnail-size = 200
max-image-width = 800
`, opts.Title, opts.Language, opts.DataFile, opts.BuildDir))
	if err := utils.WriteFile(filepath.Join(root, "site.toml"), siteToml); err != nil {
		return err
	}

	// Seed an empty tree so the first build succeeds
	tree := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<tree>
  <people/>
  <families/>
  <events/>
  <places/>
  <objects/>
  <notes/>
</tree>
`)
	if err := utils.WriteFile(filepath.Join(root, opts.DataFile), tree); err != nil {
		return err
	}

	gitignore := []byte(fmt.Sprintf("%s\n", opts.BuildDir))
	_ = utils.WriteFile(filepath.Join(root, ".gitignore"), gitignore)

	if err := os.MkdirAll(filepath.Join(root, opts.BuildDir), 0o755); err != nil {
		return err
	}

	return nil
}
