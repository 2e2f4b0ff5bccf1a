package main

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"gopkg.in/gorp.v2"
)

const (
	ProdHost   = "127.0.0.1"
	ProdDbUser = "worksuite"

	LocalHost   = "127.0.0.1"
	LocalDbUser = "root"

	DbName = "worksuite_finance"
)

var dbmap *gorp.DbMap

func initDB() {
	host := LocalHost
	password := secrets.LOCAL_DB_PW
	user := LocalDbUser

	if env.Production {
		host = ProdHost
		password = secrets.PROD_DB_PW
		user = ProdDbUser
	}

	db, err := sql.Open("mysql", user+":"+password+"@tcp("+host+":3306)/"+DbName)
	if err != nil {
		panic("💥 DB OPEN FAILED: " + err.Error())
	}

	err = db.Ping()
	if err != nil {
		panic("💥 DB PING FAILED: " + err.Error())
	}

	InfoLog.Println("Connected to DB ", host)

	dbmap = &gorp.DbMap{Db: db, Dialect: gorp.MySQLDialect{Engine: "InnoDB", Encoding: "UTF8"}}

	dbmap.AddTableWithName(PayrollRecord{}, "payroll_records")
	dbmap.AddTableWithName(Disclosure{}, "disclosures")

	err = dbmap.CreateTablesIfNotExists()
	if err != nil {
		panic("💥 DB ADD TABLES FAILED")
	}

	go runExecs()
}

func runExecs() {
	dbmap.Exec("CREATE INDEX payrollByMonth ON payroll_records (month)")
	dbmap.Exec("CREATE INDEX payrollByStatus ON payroll_records (status)")
	dbmap.Exec("CREATE INDEX disclosuresByStatus ON disclosures (status)")
	dbmap.Exec("ALTER TABLE disclosures ADD COLUMN released_date VARCHAR(255) DEFAULT ''")
}
