package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
)

// NOTE: this uses a service account, you must set a environment variable
// see https://cloud.google.com/storage/docs/reference/libraries

type UploadResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

func registerUploadRoutes(router *gin.Engine) {
	router.POST("/api/upload", uploadHandler)
}

func uploadHandler(c *gin.Context) {
	_, err := lookupThisUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not authorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing input"})
		return
	}

	docType := c.PostForm("documentType")

	file, err := fileHeader.Open()
	if err != nil {
		ErrorLog.Println("upload open err: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}
	defer file.Close()

	data, err := ioutil.ReadAll(file)
	if err != nil {
		ErrorLog.Println("upload read err: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	objectKey, err := uuid.NewV4()
	if err != nil {
		ErrorLog.Println("upload uuid err: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong"})
		return
	}

	objectName := objectKey.String() + filepath.Ext(fileHeader.Filename)

	err = bytesToGCP(secrets.UPLOAD_BUCKET, objectName, data, true)
	if err != nil {
		ErrorLog.Println("upload bytesToGCP err: ", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not store file"})
		return
	}

	resp := UploadResponse{
		Name: fileHeader.Filename,
		Type: docType,
		URL:  fmt.Sprintf("https://storage.googleapis.com/%s/%s", secrets.UPLOAD_BUCKET, objectName),
	}

	c.JSON(200, resp)
}

func bytesToGCP(BUCKET_NAME, objectName string, data []byte, setObjectPolicies bool) error {
	ctx := context.Background()

	client, err := storage.NewClient(ctx)
	if err != nil {
		return err
	}

	bucket := client.Bucket(BUCKET_NAME)

	obj := bucket.Object(objectName)
	w := obj.NewWriter(ctx)

	if setObjectPolicies {
		w.CacheControl = "no-cache"
		w.ACL = []storage.ACLRule{{Entity: storage.AllUsers, Role: storage.RoleReader}}
	}

	r := bytes.NewReader(data)
	buf := make([]byte, 1024)
	for {
		n, err := r.Read(buf)
		if err != nil && err != io.EOF {
			ErrorLog.Printf("%v\n", err)
			break
		}
		if n == 0 {
			break
		}

		if _, err := w.Write(buf[:n]); err != nil {
			ErrorLog.Printf("%v\n", err)
			break
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	return nil
}
