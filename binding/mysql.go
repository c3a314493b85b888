package binding

import (
	"bytes"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/tsbench/loggen"
	g "github.com/tsbench/loggen/generator"
)

const (
	PropertyMysqlHost            = "mysql.host"
	PropertyMysqlHostDefault     = "127.0.0.1"
	PropertyMysqlPort            = "mysql.port"
	PropertyMysqlPortDefault     = "3306"
	PropertyMysqlDatabase        = "mysql.db"
	PropertyMysqlDatabaseDefault = "db"
	PropertyMysqlUser            = "mysql.user"
	PropertyMysqlUserDefault     = "user"
	PropertyMysqlPassword        = "mysql.password"
	PropertyMysqlPasswordDefault = "password"
	PropertyMysqlOptions         = "mysql.options"
	PropertyMysqlOptionsDefault  = "charset=utf8"
	// Create the target table at Init when it does not exist yet.
	PropertyMysqlAutoCreate        = "mysql.autocreate"
	PropertyMysqlAutoCreateDefault = "true"
)

type MysqlIngester struct {
	*loggen.IngesterBase
	host     string
	port     int
	database string
	user     string
	password string
	options  string
	db       *sql.DB
}

func NewMysqlIngester() *MysqlIngester {
	return &MysqlIngester{
		IngesterBase: loggen.NewIngesterBase(),
	}
}

func (self *MysqlIngester) Init() error {
	props := self.GetProperties()
	host := props.GetDefault(PropertyMysqlHost, PropertyMysqlHostDefault)
	propStr := props.GetDefault(PropertyMysqlPort, PropertyMysqlPortDefault)
	port, err := strconv.ParseInt(propStr, 0, 32)
	if err != nil {
		return err
	}
	database := props.GetDefault(PropertyMysqlDatabase, PropertyMysqlDatabaseDefault)
	user := props.GetDefault(PropertyMysqlUser, PropertyMysqlUserDefault)
	password := props.GetDefault(PropertyMysqlPassword, PropertyMysqlPasswordDefault)
	options := props.GetDefault(PropertyMysqlOptions, PropertyMysqlOptionsDefault)
	self.host = host
	self.port = int(port)
	self.database = database
	self.user = user
	self.password = password
	self.options = options
	sourceName := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", user, password, host, port, database, options)
	db, err := sql.Open("mysql", sourceName)
	if err != nil {
		return err
	}
	self.db = db
	autoCreate, err := strconv.ParseBool(
		props.GetDefault(PropertyMysqlAutoCreate, PropertyMysqlAutoCreateDefault))
	if err != nil {
		return err
	}
	if autoCreate {
		table := props.GetDefault(loggen.PropertyTableName, loggen.PropertyTableNameDefault)
		if _, err = db.Exec(createTableStat(table)); err != nil {
			return err
		}
	}
	return nil
}

func (self *MysqlIngester) Cleanup() error {
	if self.db != nil {
		return self.db.Close()
	}
	return nil
}

// sqlColumnType maps a schema column to its MySQL declaration.
func sqlColumnType(column g.Column) string {
	switch {
	case column.Type == g.TypeTimestampMillisecond:
		return "BIGINT NOT NULL"
	case column.Type == g.TypeInt64:
		return "BIGINT NOT NULL"
	case column.Name == "log_message":
		return "TEXT NOT NULL"
	default:
		return "VARCHAR(255) NOT NULL"
	}
}

func createTableStat(table string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "CREATE TABLE IF NOT EXISTS %s (", table)
	for i, column := range g.LogTableColumns() {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s %s", column.Name, sqlColumnType(column))
	}
	buf.WriteString(", PRIMARY KEY (log_uid))")
	return buf.String()
}

// createInsertStat builds one multi-row INSERT covering the whole batch, with
// a placeholder per cell in schema column order.
func createInsertStat(table string, batch g.Batch) (string, []interface{}) {
	columns := g.LogTableColumns()
	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, column.Name)
	}
	rowPlaceholder := "(?" + strings.Repeat(", ?", len(columns)-1) + ")"

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "INSERT INTO %s (%s) VALUES ", table, strings.Join(names, ", "))
	args := make([]interface{}, 0, len(batch)*len(columns))
	for i := range batch {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(rowPlaceholder)
		args = append(args, batch[i].Values()...)
	}
	return buf.String(), args
}

func (self *MysqlIngester) WriteBatch(table string, batch g.Batch) (int64, loggen.StatusType) {
	if len(batch) == 0 {
		return 0, loggen.StatusBadRequest
	}
	statement, args := createInsertStat(table, batch)
	result, err := self.db.Exec(statement, args...)
	if err != nil {
		loggen.Debugf("fail to insert batch into %s, err: %s", table, err)
		return 0, loggen.StatusError
	}
	n, err := result.RowsAffected()
	if err != nil {
		return int64(len(batch)), loggen.StatusOK
	}
	return n, loggen.StatusOK
}
