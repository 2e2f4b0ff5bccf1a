package main

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// PropertyMap stores loose JSON settings in a VARCHAR/TEXT column.
type PropertyMap map[string]interface{}

func (pm PropertyMap) Value() (driver.Value, error) {
	b, err := json.Marshal(pm)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (pm *PropertyMap) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case nil:
		*pm = PropertyMap{}
		return nil
	default:
		return errors.New("PropertyMap: unsupported scan type")
	}

	if len(data) == 0 {
		*pm = PropertyMap{}
		return nil
	}

	return json.Unmarshal(data, pm)
}

// WorkflowStepList is the ordered step column on a workflow, stored as JSON.
type WorkflowStepList []WorkflowStep

func (sl WorkflowStepList) Value() (driver.Value, error) {
	b, err := json.Marshal(sl)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (sl *WorkflowStepList) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case nil:
		*sl = WorkflowStepList{}
		return nil
	default:
		return errors.New("WorkflowStepList: unsupported scan type")
	}

	if len(data) == 0 {
		*sl = WorkflowStepList{}
		return nil
	}

	return json.Unmarshal(data, sl)
}
