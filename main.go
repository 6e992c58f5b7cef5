package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/davrell/kinsite/internal/cli"
	"github.com/davrell/kinsite/internal/config"
	"github.com/davrell/kinsite/internal/loader"
	"github.com/davrell/kinsite/internal/renderer"
)

func main() {
	// Define subcommands
	buildCmd := flag.NewFlagSet("build", flag.ExitOnError)
	buildDir := buildCmd.String("dest-dir", "", "Destination directory for build")
	buildVerbose := buildCmd.Bool("verbose", false, "Enable verbose output")

	initCmd := flag.NewFlagSet("init", flag.ExitOnError)
	initName := initCmd.String("name", "", "Project directory name (or pass as positional)")
	initTitle := initCmd.String("title", "", "Site title (defaults to name)")
	initLanguage := initCmd.String("language", "en", "Locale tag driving the alphabetic index")
	initDataFile := initCmd.String("data-file", "data/tree.xml", "Database file")
	initBuildDir := initCmd.String("build-dir", "site", "Build output directory")
	initYes := initCmd.Bool("yes", false, "Skip interactive prompts and use provided/default values")

	cleanCmd := flag.NewFlagSet("clean", flag.ExitOnError)
	cleanDest := cleanCmd.String("dest-dir", "", "Destination directory to clean")

	if len(os.Args) < 2 {
		fmt.Println("Usage: kinsite [command]")
		fmt.Println("Commands:")
		fmt.Println("  build      Build the web report")
		fmt.Println("  init       Initialize a new site project")
		fmt.Println("  clean      Clean the build directory")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		buildCmd.Parse(os.Args[2:])
		handleBuild(*buildDir, *buildVerbose)

	case "init":
		initCmd.Parse(os.Args[2:])
		handleInit(initCmd, *initName, *initTitle, *initLanguage, *initDataFile, *initBuildDir, *initYes)

	case "clean":
		cleanCmd.Parse(os.Args[2:])
		handleClean(*cleanDest)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func handleBuild(destDir string, verbose bool) {
	// Load config
	cfg, err := config.LoadFromFile("site.toml")
	if err != nil {
		log.Printf("Warning: could not load config file: %v. Using defaults.", err)
		cfg = config.NewDefaultConfig()
	}

	// Use config's build directory if destDir not specified
	outDir := destDir
	if outDir == "" {
		outDir = cfg.Build.BuildDir
	}

	// Load database
	db, err := loader.Load(cfg.Site.DataFile)
	if err != nil {
		log.Fatalf("Failed to load database: %v", err)
	}

	fmt.Printf("Building site: %s\n", cfg.Site.Title)
	fmt.Printf("People: %d, families: %d, events: %d, media: %d\n",
		len(db.People), len(db.Families), len(db.Events), len(db.Media))

	fmt.Printf("Rendering to: %s\n", outDir)
	report, err := renderer.New(db, cfg, outDir, verbose)
	if err != nil {
		log.Fatalf("Failed to prepare report: %v", err)
	}
	if err := report.Run(); err != nil {
		log.Fatalf("Failed to render site: %v", err)
	}

	fmt.Printf("Site built successfully to %s!\n", outDir)
}

func handleInit(initCmd *flag.FlagSet, name, title, language, dataFile, buildDir string, yes bool) {
	// Determine name: prefer positional arg if present, then --name, else default
	if name == "" {
		if initCmd.NArg() >= 1 {
			name = initCmd.Arg(0)
		} else {
			name = "my-tree"
		}
	}

	fmt.Printf("Initializing new site project: %s\n", name)

	opts := cli.InitOptions{
		Name:     name,
		Title:    title,
		Language: language,
		DataFile: dataFile,
		BuildDir: buildDir,
	}

	if !yes {
		cli.FillInitOptionsInteractive(&opts)
	}

	if err := cli.Init(opts); err != nil {
		log.Fatalf("Failed to initialize site project: %v", err)
	}

	fmt.Printf("\nSuccessfully created site project in '%s'\n", name)
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", name)
	fmt.Println("  kinsite build     # build the web report")
}

func handleClean(destOverride string) {
	// Load config
	cfg, err := config.LoadFromFile("site.toml")
	if err != nil {
		log.Printf("Warning: could not load config file: %v. Using defaults.", err)
		cfg = config.NewDefaultConfig()
	}
	// Determine directory to clean
	outDir := destOverride
	if outDir == "" {
		outDir = cfg.Build.BuildDir
	}
	// If it doesn't exist, nothing to do
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		fmt.Printf("Nothing to clean; directory '%s' does not exist.\n", outDir)
		return
	}
	// Summarize contents
	var files, dirs int
	var bytes int64
	filepath.Walk(outDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != outDir {
				dirs++
			}
			return nil
		}
		files++
		bytes += info.Size()
		return nil
	})
	// Remove
	if err := os.RemoveAll(outDir); err != nil {
		log.Fatalf("Failed to remove '%s': %v", outDir, err)
	}
	fmt.Printf("Removed %d files, %d directories, %s from '%s'.\n", files, dirs, humanBytes(bytes), outDir)
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	val := float64(n) / float64(div)
	suffix := []string{"KiB", "MiB", "GiB", "TiB"}
	if exp >= len(suffix) {
		return fmt.Sprintf("%.1f PiB", val/float64(unit))
	}
	return fmt.Sprintf("%.1f %s", val, suffix[exp])
}
