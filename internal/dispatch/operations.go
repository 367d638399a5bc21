package dispatch

import (
	"context"
	"fmt"

	"github.com/ovtools/ovmcp/internal/toolkit"
)

// registerOperations installs the fixed operation set. Groupings mirror the
// toolkit's own command groups; the dispatcher treats the namespace as flat.
func (d *Dispatcher) registerOperations() {
	// --- System ---

	d.registry.Register(&Operation{
		Name:        "ov_version",
		Description: "Get the installed OakVar version",
		InputSchema: objectSchema(map[string]any{}),
		Handler: func(ctx context.Context, args Args) (any, error) {
			version, err := d.tk.Version(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"version": version}, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_system_check",
		Description: "Perform OakVar system checkup to verify installation",
		InputSchema: objectSchema(map[string]any{}),
		Handler: func(ctx context.Context, args Args) (any, error) {
			passed, output, err := d.tk.SystemCheck(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"check_passed": passed, "output": output}, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_system_setup",
		Description: "Setup or configure the OakVar system",
		InputSchema: objectSchema(map[string]any{
			"clean":      boolProp("Perform clean installation"),
			"refresh_db": boolProp("Refresh store server data"),
		}),
		Handler: func(ctx context.Context, args Args) (any, error) {
			clean, err := args.BoolOr("clean", false)
			if err != nil {
				return nil, err
			}
			refreshDB, err := args.BoolOr("refresh_db", false)
			if err != nil {
				return nil, err
			}
			if err := d.tk.SystemSetup(ctx, toolkit.SetupOptions{Clean: clean, RefreshDB: refreshDB}); err != nil {
				return nil, err
			}
			return map[string]any{"message": "System setup completed"}, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_modules_dir",
		Description: "Get or set the OakVar modules directory",
		InputSchema: objectSchema(map[string]any{
			"directory": stringProp("New modules directory path (optional, omit to get current)"),
		}),
		Handler: func(ctx context.Context, args Args) (any, error) {
			directory, err := args.StringOr("directory", "")
			if err != nil {
				return nil, err
			}
			dir, err := d.tk.ModulesDir(ctx, directory)
			if err != nil {
				return nil, err
			}
			return map[string]any{"modules_dir": dir}, nil
		},
	})

	// --- Modules ---

	d.registry.Register(&Operation{
		Name:        "ov_module_list",
		Description: "List installed and/or available OakVar modules",
		InputSchema: objectSchema(map[string]any{
			"module_names": stringListProp("Module name patterns to filter (regex supported)"),
			"module_types": stringListProp("Filter by module types (annotator, reporter, etc.)"),
			"search_store": boolProp("Include modules from the OakVar store (not just locally installed)"),
			"tags":         stringListProp("Filter by tags (regex supported)"),
		}),
		Handler: func(ctx context.Context, args Args) (any, error) {
			patterns, err := args.StringSlice("module_names")
			if err != nil {
				return nil, err
			}
			if len(patterns) == 0 {
				patterns = []string{".*"}
			}
			types, err := args.StringSlice("module_types")
			if err != nil {
				return nil, err
			}
			searchStore, err := args.BoolOr("search_store", false)
			if err != nil {
				return nil, err
			}
			tags, err := args.StringSlice("tags")
			if err != nil {
				return nil, err
			}

			modules, err := d.tk.ModuleList(ctx, toolkit.ListOptions{
				Patterns:    patterns,
				Types:       types,
				SearchStore: searchStore,
				Tags:        tags,
			})
			if err != nil {
				return nil, err
			}

			payload := map[string]any{"modules": modules}
			if list, ok := modules.([]any); ok {
				payload["count"] = len(list)
			}
			return payload, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_module_info",
		Description: "Get detailed information about a specific module",
		InputSchema: objectSchema(map[string]any{
			"module_name": stringProp("Name of the module to get info for"),
			"local":       boolProp("Only check local installation (skip store lookup)"),
		}, "module_name"),
		Required: []string{"module_name"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			name, err := args.String("module_name")
			if err != nil {
				return nil, err
			}
			local, err := args.BoolOr("local", false)
			if err != nil {
				return nil, err
			}
			return d.tk.ModuleInfo(ctx, name, local)
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_module_install",
		Description: "Install OakVar modules from the store",
		InputSchema: objectSchema(map[string]any{
			"module_names":      stringListProp("List of module names to install"),
			"overwrite":         boolProp("Overwrite existing modules"),
			"skip_dependencies": boolProp("Skip installing module dependencies"),
		}, "module_names"),
		Required: []string{"module_names"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			names, err := args.RequiredStringSlice("module_names")
			if err != nil {
				return nil, err
			}
			overwrite, err := args.BoolOr("overwrite", false)
			if err != nil {
				return nil, err
			}
			skipDeps, err := args.BoolOr("skip_dependencies", false)
			if err != nil {
				return nil, err
			}
			if err := d.tk.ModuleInstall(ctx, names, toolkit.InstallOptions{
				Overwrite:        overwrite,
				SkipDependencies: skipDeps,
			}); err != nil {
				return nil, err
			}
			return map[string]any{"installed": names}, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_module_uninstall",
		Description: "Uninstall OakVar modules",
		InputSchema: objectSchema(map[string]any{
			"module_names": stringListProp("List of module names to uninstall"),
		}, "module_names"),
		Required: []string{"module_names"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			names, err := args.RequiredStringSlice("module_names")
			if err != nil {
				return nil, err
			}
			if err := d.tk.ModuleUninstall(ctx, names); err != nil {
				return nil, err
			}
			return map[string]any{"uninstalled": names}, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_module_update",
		Description: "Update installed OakVar modules to latest versions",
		InputSchema: objectSchema(map[string]any{
			"module_name_patterns": stringListProp("Module name patterns to update (regex supported)"),
		}),
		Handler: func(ctx context.Context, args Args) (any, error) {
			patterns, err := args.StringSlice("module_name_patterns")
			if err != nil {
				return nil, err
			}
			if err := d.tk.ModuleUpdate(ctx, patterns); err != nil {
				return nil, err
			}
			return map[string]any{"message": "Update completed"}, nil
		},
	})

	// --- Pipeline ---

	d.registry.Register(&Operation{
		Name:        "ov_run",
		Description: "Run the OakVar annotation pipeline on input files",
		InputSchema: objectSchema(map[string]any{
			"inputs":       stringListProp("Paths to input files (VCF, etc.)"),
			"annotators":   stringListProp("List of annotator modules to run"),
			"report_types": stringListProp("Report types to generate (e.g., 'vcf', 'excel', 'csv')"),
			"output_dir":   stringProp("Output directory for results"),
			"genome":       stringProp("Genome assembly (e.g., 'hg38', 'hg19')"),
			"run_name":     stringProp("Name for this analysis run"),
			"mp":           intProp("Number of cores to use for parallel processing"),
		}, "inputs"),
		Required: []string{"inputs"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			inputs, err := args.RequiredStringSlice("inputs")
			if err != nil {
				return nil, err
			}
			annotators, err := args.StringSlice("annotators")
			if err != nil {
				return nil, err
			}
			reportTypes, err := args.StringSlice("report_types")
			if err != nil {
				return nil, err
			}
			outputDir, err := args.StringOr("output_dir", "")
			if err != nil {
				return nil, err
			}
			genome, err := args.StringOr("genome", "")
			if err != nil {
				return nil, err
			}
			runName, err := args.StringOr("run_name", "")
			if err != nil {
				return nil, err
			}
			cores, err := args.IntOr("mp", 0)
			if err != nil {
				return nil, err
			}

			result, err := d.tk.RunPipeline(ctx, toolkit.RunOptions{
				Inputs:      inputs,
				Annotators:  annotators,
				ReportTypes: reportTypes,
				OutputDir:   outputDir,
				Genome:      genome,
				RunName:     runName,
				Cores:       cores,
			})
			if err != nil {
				return nil, err
			}
			return map[string]any{"message": "Pipeline completed", "result": result}, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_report",
		Description: "Generate reports from an existing OakVar result database",
		InputSchema: objectSchema(map[string]any{
			"dbpath":       stringProp("Path to OakVar result SQLite database"),
			"report_types": stringListProp("Report types to generate"),
			"output_dir":   stringProp("Output directory for reports"),
			"filterpath":   stringProp("Path to filter configuration file"),
			"filtersql":    stringProp("SQL filter expression"),
			"cols":         stringListProp("Specific columns to include in report"),
		}, "dbpath"),
		Required: []string{"dbpath"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			dbpath, err := args.String("dbpath")
			if err != nil {
				return nil, err
			}
			reportTypes, err := args.StringSlice("report_types")
			if err != nil {
				return nil, err
			}
			outputDir, err := args.StringOr("output_dir", "")
			if err != nil {
				return nil, err
			}
			filterPath, err := args.StringOr("filterpath", "")
			if err != nil {
				return nil, err
			}
			filterSQL, err := args.StringOr("filtersql", "")
			if err != nil {
				return nil, err
			}
			cols, err := args.StringSlice("cols")
			if err != nil {
				return nil, err
			}

			reports, err := d.tk.Report(ctx, toolkit.ReportOptions{
				DBPath:      dbpath,
				ReportTypes: reportTypes,
				OutputDir:   outputDir,
				FilterPath:  filterPath,
				FilterSQL:   filterSQL,
				Columns:     cols,
			})
			if err != nil {
				return nil, err
			}
			return map[string]any{"message": "Report generation completed", "reports": reports}, nil
		},
	})

	// --- Data ---

	d.registry.Register(&Operation{
		Name:        "ov_sqliteinfo",
		Description: "Get information about an OakVar result SQLite database",
		InputSchema: objectSchema(map[string]any{
			"dbpath": stringProp("Path to the SQLite database file"),
		}, "dbpath"),
		Required: []string{"dbpath"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			dbpath, err := args.String("dbpath")
			if err != nil {
				return nil, err
			}
			return d.tk.SQLiteInfo(ctx, dbpath)
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_filtersqlite",
		Description: "Create a filtered copy of an OakVar result database",
		InputSchema: objectSchema(map[string]any{
			"dbpaths":       stringListProp("Paths to SQLite database files to filter"),
			"filterpath":    stringProp("Path to filter configuration file"),
			"filtersql":     stringProp("SQL filter expression"),
			"includesample": stringListProp("Samples to include"),
			"excludesample": stringListProp("Samples to exclude"),
			"suffix":        stringProp("Suffix for filtered output file"),
			"out":           stringProp("Output directory"),
		}, "dbpaths"),
		Required: []string{"dbpaths"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			dbpaths, err := args.RequiredStringSlice("dbpaths")
			if err != nil {
				return nil, err
			}
			filterPath, err := args.StringOr("filterpath", "")
			if err != nil {
				return nil, err
			}
			filterSQL, err := args.StringOr("filtersql", "")
			if err != nil {
				return nil, err
			}
			include, err := args.StringSlice("includesample")
			if err != nil {
				return nil, err
			}
			exclude, err := args.StringSlice("excludesample")
			if err != nil {
				return nil, err
			}
			suffix, err := args.StringOr("suffix", "filtered")
			if err != nil {
				return nil, err
			}
			out, err := args.StringOr("out", ".")
			if err != nil {
				return nil, err
			}

			if err := d.tk.FilterSQLite(ctx, toolkit.FilterOptions{
				DBPaths:        dbpaths,
				FilterPath:     filterPath,
				FilterSQL:      filterSQL,
				IncludeSamples: include,
				ExcludeSamples: exclude,
				Suffix:         suffix,
				OutputDir:      out,
			}); err != nil {
				return nil, err
			}
			return map[string]any{"message": "Filtering completed"}, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_query",
		Description: "Execute a SQL query on an OakVar result database (SELECT only)",
		InputSchema: objectSchema(map[string]any{
			"dbpath": stringProp("Path to the SQLite database file"),
			"sql":    stringProp("SQL query to execute (SELECT only for safety)"),
			"limit":  intProp("Maximum number of rows to return"),
		}, "dbpath", "sql"),
		Required: []string{"dbpath", "sql"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			dbpath, err := args.String("dbpath")
			if err != nil {
				return nil, err
			}
			sqlText, err := args.String("sql")
			if err != nil {
				return nil, err
			}
			limit, err := args.IntOr("limit", 0)
			if err != nil {
				return nil, err
			}
			return d.queries.Run(ctx, dbpath, sqlText, limit)
		},
	})

	// --- Development ---

	d.registry.Register(&Operation{
		Name:        "ov_new_module",
		Description: "Create a new OakVar module template",
		InputSchema: objectSchema(map[string]any{
			"module_name": stringProp("Name for the new module"),
			"module_type": map[string]any{
				"type":        "string",
				"description": "Type of module (annotator, reporter, converter, etc.)",
				"enum":        []string{"annotator", "reporter", "converter", "mapper", "postaggregator"},
			},
		}, "module_name", "module_type"),
		Required: []string{"module_name", "module_type"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			name, err := args.String("module_name")
			if err != nil {
				return nil, err
			}
			moduleType, err := args.String("module_type")
			if err != nil {
				return nil, err
			}
			directory, err := d.tk.NewModule(ctx, name, moduleType)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"message":   fmt.Sprintf("Module '%s' created", name),
				"directory": directory,
			}, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_new_exampleinput",
		Description: "Create an example input file for testing",
		InputSchema: objectSchema(map[string]any{
			"directory": stringProp("Directory to create the example input file in"),
		}),
		Handler: func(ctx context.Context, args Args) (any, error) {
			directory, err := args.StringOr("directory", ".")
			if err != nil {
				return nil, err
			}
			path, err := d.tk.NewExampleInput(ctx, directory)
			if err != nil {
				return nil, err
			}
			return map[string]any{"message": "Example input created", "path": path}, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_module_pack",
		Description: "Pack a module for distribution/registration",
		InputSchema: objectSchema(map[string]any{
			"module_name": stringProp("Name of the module to pack"),
			"outdir":      stringProp("Output directory for the packed module"),
			"code_only":   boolProp("Pack only code (not data)"),
		}, "module_name"),
		Required: []string{"module_name"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			name, err := args.String("module_name")
			if err != nil {
				return nil, err
			}
			outdir, err := args.StringOr("outdir", "")
			if err != nil {
				return nil, err
			}
			codeOnly, err := args.BoolOr("code_only", false)
			if err != nil {
				return nil, err
			}
			files, err := d.tk.PackModule(ctx, name, outdir, codeOnly)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"message": fmt.Sprintf("Module '%s' packed", name),
				"files":   files,
			}, nil
		},
	})

	// --- Store ---

	d.registry.Register(&Operation{
		Name:        "ov_store_fetch",
		Description: "Fetch/refresh the OakVar store cache",
		InputSchema: objectSchema(map[string]any{
			"refresh_db": boolProp("Fetch a clean copy of the store database"),
			"clean":      boolProp("Install store cache from scratch"),
		}),
		Handler: func(ctx context.Context, args Args) (any, error) {
			refreshDB, err := args.BoolOr("refresh_db", false)
			if err != nil {
				return nil, err
			}
			clean, err := args.BoolOr("clean", false)
			if err != nil {
				return nil, err
			}
			if err := d.tk.StoreFetch(ctx, refreshDB, clean); err != nil {
				return nil, err
			}
			return map[string]any{"message": "Store cache fetched"}, nil
		},
	})

	d.registry.Register(&Operation{
		Name:        "ov_store_register",
		Description: "Register a module in the OakVar store",
		InputSchema: objectSchema(map[string]any{
			"module_name": stringProp("Name of the module to register"),
			"code_url":    stringListProp("URLs of code zip files"),
			"data_url":    stringListProp("URLs of data zip files"),
		}, "module_name"),
		Required: []string{"module_name"},
		Handler: func(ctx context.Context, args Args) (any, error) {
			name, err := args.String("module_name")
			if err != nil {
				return nil, err
			}
			codeURLs, err := args.StringSlice("code_url")
			if err != nil {
				return nil, err
			}
			dataURLs, err := args.StringSlice("data_url")
			if err != nil {
				return nil, err
			}
			if err := d.tk.StoreRegister(ctx, name, codeURLs, dataURLs); err != nil {
				return nil, err
			}
			return map[string]any{"message": fmt.Sprintf("Module '%s' registered", name)}, nil
		},
	})
}
