package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
)

type Secrets struct {
	Port                     string `json:"port"`
	PROD_DB_PW               string `json:"prod_db_pw"`
	LOCAL_DB_PW              string `json:"local_db_pw"`
	SG_EMAILER_PASSWORD      string `json:"sg_emailer_password"`
	NO_REPLY_EMAILER_ADDRESS string `json:"no_reply_emailer_address"`
	OPS_NOTIFICATION_ADDRESS string `json:"ops_notification_address"`
	HR_API_BASE              string `json:"hr_api_base"`
	CSM_API_BASE             string `json:"csm_api_base"`
	UPLOAD_BUCKET            string `json:"upload_bucket"`
}

var secrets Secrets

func loadSecrets() {
	absPath := "/etc/worksuite/cso/secrets.json"
	if !env.Production {
		absPath, _ = filepath.Abs("./cso/config/secrets.json")
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
		secrets.Port = "8081"
	}

	// deploys can point the sibling apps somewhere else without a new secrets file
	if v := os.Getenv("HR_API_BASE"); v != "" {
		secrets.HR_API_BASE = v
	}
	if v := os.Getenv("CSM_API_BASE"); v != "" {
		secrets.CSM_API_BASE = v
	}
}
