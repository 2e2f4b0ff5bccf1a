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

	DbName = "worksuite_cso"
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

	dbmap.AddTableWithName(Candidate{}, "candidates")
	dbmap.AddTableWithName(CandidateDocument{}, "candidate_documents")
	dbmap.AddTableWithName(Ticket{}, "tickets")
	dbmap.AddTableWithName(User{}, "users")

	err = dbmap.CreateTablesIfNotExists()
	if err != nil {
		panic("💥 DB ADD TABLES FAILED")
	}

	go runExecs()
}

func runExecs() {
	dbmap.Exec("CREATE UNIQUE INDEX emailUnique ON users (email)")
	dbmap.Exec("CREATE INDEX candidateStatus ON candidates (status)")
	dbmap.Exec("CREATE INDEX docsByCandidate ON candidate_documents (candidate_id)")
	dbmap.Exec("ALTER TABLE candidates ADD COLUMN ol_released_date VARCHAR(255) DEFAULT ''")
	dbmap.Exec("ALTER TABLE candidates ADD COLUMN zimyo_id VARCHAR(255) DEFAULT ''")
	dbmap.Exec("ALTER TABLE candidates ADD COLUMN zimyo_access_date VARCHAR(255) DEFAULT ''")
	dbmap.Exec("ALTER TABLE tickets ADD COLUMN category VARCHAR(255) DEFAULT ''")
	dbmap.Exec("ALTER TABLE tickets ADD COLUMN related_candidate_id BIGINT(20)")
	dbmap.Exec("CREATE INDEX ticketsByCandidate ON tickets (related_candidate_id)")
}
