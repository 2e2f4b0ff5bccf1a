package main

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
)

type Secrets struct {
	Port        string `json:"port"`
	PROD_DB_PW  string `json:"prod_db_pw"`
	LOCAL_DB_PW string `json:"local_db_pw"`
	API_TOKEN   string `json:"api_token"`
}

var secrets Secrets

func loadSecrets() {
	absPath := "/etc/worksuite/hradmin/secrets.json"
	if !env.Production {
		absPath, _ = filepath.Abs("./hradmin/config/secrets.json")
	}

	raw, err := ioutil.ReadFile(absPath)
	if err != nil {
		ErrorLog.Println(err)
		panic("FAILED to open secrets json: " + err.Error())
	}

	err = json.Unmarshal(raw, &secrets)
	if err != nil {
		ErrorLog.Println(err)
		panic("FAILED Unmarshal secrets json: " + err.Error())
	}

	if secrets.Port == "" {
		secrets.Port = "8082"
	}
}
