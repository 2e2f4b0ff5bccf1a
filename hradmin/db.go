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

	DbName = "worksuite_hradmin"
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

	dbmap.AddTableWithName(Employee{}, "employees")
	dbmap.AddTableWithName(Vendor{}, "vendors")
	dbmap.AddTableWithName(Utility{}, "utilities")
	dbmap.AddTableWithName(Ticket{}, "tickets")
	dbmap.AddTableWithName(ComplianceEnrollment{}, "compliance_enrollments")

	err = dbmap.CreateTablesIfNotExists()
	if err != nil {
		panic("💥 DB ADD TABLES FAILED")
	}

	go runExecs()
}

func runExecs() {
	dbmap.Exec("CREATE INDEX enrollByCandidate ON compliance_enrollments (cso_candidate_id)")
	dbmap.Exec("ALTER TABLE employees ADD COLUMN department VARCHAR(255) DEFAULT ''")
	dbmap.Exec("ALTER TABLE vendors ADD COLUMN gst_number VARCHAR(255) DEFAULT ''")
	dbmap.Exec("ALTER TABLE utilities ADD COLUMN due_date VARCHAR(255) DEFAULT ''")
}
