package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

type PayrollExportRow struct {
	EmployeeName string  `csv:"Employee Name"`
	Month        string  `csv:"Month"`
	GrossPay     float64 `csv:"Gross Pay"`
	Deductions   float64 `csv:"Deductions"`
	NetPay       float64 `csv:"Net Pay"`
	Status       string  `csv:"Status"`
	PaidDate     string  `csv:"Paid Date"`
}

func exportPayrollHandler(c *gin.Context) {
	if err := checkAPIToken(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	allRecords := []PayrollRecord{}

	month := c.Query("month")
	var err error
	if month != "" {
		_, err = dbmap.Select(&allRecords, "SELECT * FROM payroll_records WHERE month = ? ORDER BY employee_name", month)
	} else {
		_, err = dbmap.Select(&allRecords, "SELECT * FROM payroll_records ORDER BY month, employee_name")
	}
	if err != nil {
		ErrorLog.Println("cant lookup payroll records for export: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	rows := payrollExportRows(allRecords)

	csvBytes, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		ErrorLog.Println("cant marshal payroll csv: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	filename := fmt.Sprintf("payroll_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "text/csv", csvBytes)
}

func payrollExportRows(records []PayrollRecord) []PayrollExportRow {
	rows := []PayrollExportRow{}
	for _, record := range records {
		rows = append(rows, PayrollExportRow{
			EmployeeName: record.EmployeeName,
			Month:        record.Month,
			GrossPay:     record.GrossPay,
			Deductions:   record.Deductions,
			NetPay:       record.NetPay,
			Status:       record.Status,
			PaidDate:     record.PaidDate,
		})
	}

	return rows
}

func runDisclosureFeed() {
	InfoLog.Println("Starting disclosure feed")

	released := []Disclosure{}
	_, err := dbmap.Select(&released, "SELECT * FROM disclosures WHERE status = ? ORDER BY id", DisclosureStatusReleased)
	if err != nil {
		ErrorLog.Println("DISCLOSURE FEED FAILED: cant lookup released disclosures: ", err)
		return
	}

	err = pushDisclosureFeed(released)
	if err != nil {
		ErrorLog.Println("DISCLOSURE FEED FAILED: " + err.Error())
	} else {
		InfoLog.Println("Disclosure feed successful")
	}
}

func buildDisclosureFeed(disclosures []Disclosure) string {
	feed := ""
	for _, disclosure := range disclosures {
		format := "DISC|%v|%s|%s|%s|%.2f|%s\r\n"
		line := fmt.Sprintf(format, disclosure.ID, disclosure.Title, disclosure.Category,
			disclosure.Period, disclosure.Amount, disclosure.ReleasedDate)

		feed = feed + line
	}

	return feed
}

func pushDisclosureFeed(disclosures []Disclosure) error {
	feed := buildDisclosureFeed(disclosures)

	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return errors.New("could not load location")
	}
	creationFilename := time.Now().In(loc).Format("20060102150405")

	sshClient, sftpClient, err := connectSFTP(SFTPCredentials{secrets.SFTP_USERNAME, secrets.SFTP_PASSWORD, secrets.SFTP_HOST})
	if err != nil {
		return errors.New("connectSFTP err: " + err.Error())
	}

	file, err := sftpClient.Create(fmt.Sprintf("/disclosures_%s.txt", creationFilename))
	if err != nil {
		return errors.New("sftpClient.Create err: " + err.Error())
	}
	defer file.Close()

	_, err = io.Copy(file, strings.NewReader(feed))
	if err != nil {
		return errors.New("sftpClient ioCopy err: " + err.Error())
	}

	sshClient.Close()
	sftpClient.Close()

	return nil
}

type SFTPCredentials struct {
	Username    string
	Password    string
	HostAddress string
}

func connectSFTP(creds SFTPCredentials) (*ssh.Client, *sftp.Client, error) {
	addr, err := net.LookupIP(creds.HostAddress)
	if err != nil {
		return nil, nil, errors.New("LookupIP err!: " + err.Error())
	}

	if len(addr) < 1 {
		return nil, nil, errors.New(fmt.Sprint("ip address was < 1: ", addr))
	}

	host := addr[0].String()

	config := &ssh.ClientConfig{
		User: creds.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(creds.Password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	conn, err := ssh.Dial("tcp", host+":22", config)
	if err != nil {
		return nil, nil, err
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		return nil, nil, err
	}

	return conn, client, nil
}
