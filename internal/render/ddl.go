package render

import (
	"github.com/zoobzio/sqlb/internal/types"
)

// DDL statements bind no parameters in most engines, so column defaults
// always render through the literal path even in parameter mode.

func renderCreateTable(c *renderContext, s *types.CreateTableStatement) error {
	c.write("CREATE TABLE ")
	if s.IfNotExists {
		if !c.d.Caps.IfNotExists {
			return c.d.Unsupported("CREATE TABLE IF NOT EXISTS", "check table existence separately")
		}
		c.write("IF NOT EXISTS ")
	}
	if err := c.writeIdent(s.Table); err != nil {
		return err
	}
	c.write(" ( ")
	for i, def := range s.Columns {
		if i > 0 {
			c.write(", ")
		}
		if err := renderColumnDef(c, def); err != nil {
			return err
		}
	}
	if len(s.PrimaryKey) > 0 {
		c.write(", PRIMARY KEY (")
		for i, col := range s.PrimaryKey {
			if i > 0 {
				c.write(", ")
			}
			if err := c.writeIdent(col); err != nil {
				return err
			}
		}
		c.writeByte(')')
	}
	c.write(" )")
	return nil
}

// renderColumnDef writes one column definition. The dialect's ColumnType
// hook may fold auto-increment into the type text (serial, IDENTITY); in
// that case the dialect leaves AutoIncrement empty and no keyword is
// appended here.
func renderColumnDef(c *renderContext, def *types.ColumnDef) error {
	if err := c.writeIdent(def.Name); err != nil {
		return err
	}
	c.writeByte(' ')
	typeText, err := c.d.ColumnType(def)
	if err != nil {
		return err
	}
	c.write(typeText)
	if def.NotNull {
		c.write(" NOT NULL")
	} else if def.Nullable {
		c.write(" NULL")
	}
	if def.Default != nil {
		c.write(" DEFAULT ")
		lit, err := c.literal(*def.Default)
		if err != nil {
			return err
		}
		c.write(lit)
	}
	keyword := c.d.AutoIncrement
	if def.AutoIncrement && keyword != "" && !c.d.AutoIncrementAfterPK {
		c.writeByte(' ')
		c.write(keyword)
	}
	if def.Unique {
		c.write(" UNIQUE")
	}
	if def.PrimaryKey {
		c.write(" PRIMARY KEY")
	}
	if def.AutoIncrement && keyword != "" && c.d.AutoIncrementAfterPK {
		c.writeByte(' ')
		c.write(keyword)
	}
	return nil
}

func renderDropTable(c *renderContext, s *types.DropTableStatement) error {
	c.write("DROP TABLE ")
	if s.IfExists {
		c.write("IF EXISTS ")
	}
	for i, t := range s.Tables {
		if i > 0 {
			c.write(", ")
		}
		if err := c.writeIdent(t); err != nil {
			return err
		}
	}
	return nil
}

func renderTruncateTable(c *renderContext, s *types.TruncateTableStatement) error {
	if !c.d.Caps.Truncate {
		return c.d.Unsupported("TRUNCATE TABLE", "use DELETE without a WHERE clause")
	}
	c.write("TRUNCATE TABLE ")
	return c.writeIdent(s.Table)
}

func renderRenameTable(c *renderContext, s *types.RenameTableStatement) error {
	if !c.d.Caps.RenameTable {
		return c.d.Unsupported("RENAME TABLE", "use the engine's rename procedure")
	}
	if c.d.Caps.RenameTableKeyword {
		c.write("RENAME TABLE ")
		if err := c.writeIdent(s.From); err != nil {
			return err
		}
		c.write(" TO ")
		return c.writeIdent(s.To)
	}
	c.write("ALTER TABLE ")
	if err := c.writeIdent(s.From); err != nil {
		return err
	}
	c.write(" RENAME TO ")
	return c.writeIdent(s.To)
}

func renderAlterTable(c *renderContext, s *types.AlterTableStatement) error {
	c.write("ALTER TABLE ")
	if err := c.writeIdent(s.Table); err != nil {
		return err
	}
	switch s.Kind {
	case types.AlterAddColumn:
		if c.d.Caps.AddColumnKeyword {
			c.write(" ADD COLUMN ")
		} else {
			c.write(" ADD ")
		}
		return renderColumnDef(c, s.Column)
	case types.AlterModifyColumn:
		return renderModifyColumn(c, s.Column)
	case types.AlterRenameColumn:
		if !c.d.Caps.RenameColumn {
			return c.d.Unsupported("RENAME COLUMN", "use the engine's rename procedure")
		}
		c.write(" RENAME COLUMN ")
		if err := c.writeIdent(s.From); err != nil {
			return err
		}
		c.write(" TO ")
		return c.writeIdent(s.To)
	case types.AlterDropColumn:
		if !c.d.Caps.DropColumn {
			return c.d.Unsupported("DROP COLUMN", "recreate the table without the column")
		}
		c.write(" DROP COLUMN ")
		return c.writeIdent(s.Name)
	}
	return types.NewEmptyStatementError("ALTER TABLE", "unknown operation")
}

func renderModifyColumn(c *renderContext, def *types.ColumnDef) error {
	switch c.d.Caps.ModifyColumn {
	case ModifyMySQL:
		c.write(" MODIFY COLUMN ")
		return renderColumnDef(c, def)
	case ModifyAlterType:
		c.write(" ALTER COLUMN ")
		if err := c.writeIdent(def.Name); err != nil {
			return err
		}
		c.write(" TYPE ")
		typeText, err := c.d.ColumnType(def)
		if err != nil {
			return err
		}
		c.write(typeText)
		return nil
	case ModifyAlterPlain:
		c.write(" ALTER COLUMN ")
		if err := c.writeIdent(def.Name); err != nil {
			return err
		}
		c.writeByte(' ')
		typeText, err := c.d.ColumnType(def)
		if err != nil {
			return err
		}
		c.write(typeText)
		if def.NotNull {
			c.write(" NOT NULL")
		} else if def.Nullable {
			c.write(" NULL")
		}
		return nil
	}
	return c.d.Unsupported("MODIFY COLUMN", "recreate the table with the new definition")
}

func renderCreateIndex(c *renderContext, s *types.CreateIndexStatement) error {
	if s.Unique {
		c.write("CREATE UNIQUE INDEX ")
	} else {
		c.write("CREATE INDEX ")
	}
	if err := c.writeIdent(s.Name); err != nil {
		return err
	}
	c.write(" ON ")
	if err := c.writeIdent(s.Table); err != nil {
		return err
	}
	c.write(" (")
	for i, col := range s.Columns {
		if i > 0 {
			c.write(", ")
		}
		if err := c.writeIdent(col); err != nil {
			return err
		}
	}
	c.writeByte(')')
	return nil
}

func renderDropIndex(c *renderContext, s *types.DropIndexStatement) error {
	c.write("DROP INDEX ")
	if err := c.writeIdent(s.Name); err != nil {
		return err
	}
	if c.d.Caps.DropIndexOnTable {
		if s.Table == nil {
			return types.NewEmptyStatementError("DROP INDEX", "this dialect requires the indexed table")
		}
		c.write(" ON ")
		return c.writeIdent(s.Table)
	}
	return nil
}

func renderCreateForeignKey(c *renderContext, s *types.CreateForeignKeyStatement) error {
	if !c.d.Caps.ForeignKeys {
		return c.d.Unsupported("ADD FOREIGN KEY", "declare the constraint inside CREATE TABLE")
	}
	c.write("ALTER TABLE ")
	if err := c.writeIdent(s.Table); err != nil {
		return err
	}
	c.write(" ADD CONSTRAINT ")
	if err := c.writeIdent(s.Name); err != nil {
		return err
	}
	c.write(" FOREIGN KEY ")
	if c.d.Caps.RepeatFKName {
		if err := c.writeIdent(s.Name); err != nil {
			return err
		}
		c.writeByte(' ')
	}
	c.writeByte('(')
	for i, col := range s.Columns {
		if i > 0 {
			c.write(", ")
		}
		if err := c.writeIdent(col); err != nil {
			return err
		}
	}
	c.write(") REFERENCES ")
	if err := c.writeIdent(s.RefTable); err != nil {
		return err
	}
	c.write(" (")
	for i, col := range s.RefColumns {
		if i > 0 {
			c.write(", ")
		}
		if err := c.writeIdent(col); err != nil {
			return err
		}
	}
	c.writeByte(')')
	if s.OnDelete != types.FKNone {
		c.write(" ON DELETE ")
		c.write(string(s.OnDelete))
	}
	if s.OnUpdate != types.FKNone {
		c.write(" ON UPDATE ")
		c.write(string(s.OnUpdate))
	}
	return nil
}

func renderDropForeignKey(c *renderContext, s *types.DropForeignKeyStatement) error {
	if !c.d.Caps.ForeignKeys {
		return c.d.Unsupported("DROP FOREIGN KEY", "recreate the table without the constraint")
	}
	c.write("ALTER TABLE ")
	if err := c.writeIdent(s.Table); err != nil {
		return err
	}
	c.write(" DROP ")
	keyword := c.d.Caps.DropFKKeyword
	if keyword == "" {
		keyword = "CONSTRAINT"
	}
	c.write(keyword)
	c.writeByte(' ')
	return c.writeIdent(s.Name)
}
