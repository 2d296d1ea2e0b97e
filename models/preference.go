package models

// Preference is one row of the string-keyed settings store. Session flags
// and the serialized entry list live here, mirroring the key space of the
// mobile client's shared preferences.
type Preference struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text"`
}
