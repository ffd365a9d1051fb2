package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IDList ID 数组类型，以 JSON 数组形式存储
type IDList []uint

// Value 实现 driver.Valuer 接口
func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]uint(l))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan 实现 sql.Scanner 接口
func (l *IDList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = IDList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported id list type: %T", value)
	}
	if len(raw) == 0 {
		*l = IDList{}
		return nil
	}
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		return err
	}
	*l = IDList(ids)
	return nil
}

// Contains 判断是否包含指定 ID
func (l IDList) Contains(id uint) bool {
	for _, item := range l {
		if item == id {
			return true
		}
	}
	return false
}
