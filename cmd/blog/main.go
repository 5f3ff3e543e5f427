package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arbarlow/blog"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		cfg := loadConfig()
		b := blog.NewBuilder(cfg)
		if err := b.Build(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		cfg := loadConfig()
		if err := blog.Serve(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, `Usage: blog new "Post Title"`)
			os.Exit(1)
		}
		cfg := loadConfig()
		if err := runNew(cfg, os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("blog %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func loadConfig() blog.SiteConfig {
	cfg, err := blog.LoadConfig(blog.EnvOr("BLOG_CONFIG", ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func printUsage() {
	fmt.Println(`blog - A static blog generator

Usage:
  blog <command> [arguments]

Commands:
  build         Render the site into the output directory
  serve         Preview the built site locally
  new <title>   Scaffold a new post in the content directory
  version       Print the version
  help          Show this help message

Configuration is read from blog.yaml (override with BLOG_CONFIG) and
BLOG_* environment variables.`)
}
