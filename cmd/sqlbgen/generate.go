package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"github.com/spf13/cobra"
	"github.com/zoobzio/dbml"
	"sigs.k8s.io/yaml"

	"github.com/zoobzio/sqlb/schema"
)

const sqlbPkg = "github.com/zoobzio/sqlb"

var (
	genSchema  string
	genOutput  string
	genPackage string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate identifier constants from a schema file",
	Example: `  # Generate constants to a file
  sqlbgen generate --schema schema.yaml --output models/schema.go

  # Output to stdout
  sqlbgen generate --schema schema.yaml`,
	RunE: func(*cobra.Command, []string) error {
		schemaPath := resolve(genSchema, cfg.Schema)
		output := resolve(genOutput, cfg.Output)
		pkg := resolve(genPackage, cfg.Package, "models")

		project, err := loadSchema(schemaPath)
		if err != nil {
			return err
		}
		// Index through the schema package so the generated names are
		// valid against the same registry queries will use.
		if _, err := schema.New(project); err != nil {
			return err
		}

		f := genFile(pkg, project)
		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return fmt.Errorf("rendering generated code: %w", err)
		}

		if output == "" {
			_, err = os.Stdout.Write(buf.Bytes())
			return err
		}
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Println("Generated", output)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genSchema, "schema", "", "schema file (YAML)")
	generateCmd.Flags().StringVar(&genOutput, "output", "", "output file (default: stdout)")
	generateCmd.Flags().StringVar(&genPackage, "package", "", "package name for generated code")
}

// resolve returns the first non-empty value, implementing the
// precedence flag > config > default.
func resolve(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type schemaFile struct {
	Tables []tableDef `json:"tables"`
}

type tableDef struct {
	Name    string      `json:"name"`
	Columns []columnDef `json:"columns"`
}

type columnDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// loadSchema reads a YAML schema description into a DBML project. Every
// name is checked against the identifier grammar before it can reach
// generated code.
func loadSchema(path string) (*dbml.Project, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}

	var sf schemaFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(sf.Tables) == 0 {
		return nil, fmt.Errorf("%s defines no tables", path)
	}

	project := dbml.NewProject("sqlbgen")
	for _, t := range sf.Tables {
		if !schema.ValidIdent(t.Name) {
			return nil, fmt.Errorf("unsafe table name %q", t.Name)
		}
		table := dbml.NewTable(t.Name)
		if len(t.Columns) == 0 {
			return nil, fmt.Errorf("table %q defines no columns", t.Name)
		}
		for _, c := range t.Columns {
			if !schema.ValidIdent(c.Name) {
				return nil, fmt.Errorf("unsafe column name %q in table %q", c.Name, t.Name)
			}
			typ := c.Type
			if typ == "" {
				typ = "text"
			}
			table.AddColumn(dbml.NewColumn(c.Name, typ))
		}
		project.AddTable(table)
	}
	return project, nil
}

// genFile builds the generated Go file: one table constant plus one
// constant per column, all typed sqlb.Alias.
func genFile(pkg string, project *dbml.Project) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by sqlbgen. DO NOT EDIT.")

	for _, table := range project.Tables {
		tableConst := exported(table.Name)
		f.Commentf("%s is the %s table.", tableConst, table.Name)
		f.Const().Id(tableConst).Qual(sqlbPkg, "Alias").Op("=").Lit(table.Name)

		f.Commentf("Columns of the %s table.", table.Name)
		f.Const().DefsFunc(func(g *jen.Group) {
			for _, col := range table.Columns {
				g.Id(tableConst + exported(col.Name)).Qual(sqlbPkg, "Alias").Op("=").Lit(col.Name)
			}
		})
	}
	return f
}

var rules = inflect.NewDefaultRuleset()

// initialisms that Camelize leaves half-capitalized.
var initialisms = map[string]string{
	"Id":   "ID",
	"Uuid": "UUID",
	"Json": "JSON",
	"Url":  "URL",
}

// exported converts a snake_case identifier to an exported Go name,
// upper-casing common initialisms (user_id becomes UserID).
func exported(name string) string {
	out := rules.Camelize(name)
	for from, to := range initialisms {
		if out == from {
			return to
		}
		if strings.HasSuffix(out, from) {
			return strings.TrimSuffix(out, from) + to
		}
	}
	return out
}
