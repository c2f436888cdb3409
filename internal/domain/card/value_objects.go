package card

import (
	"strconv"
	"time"
)

const (
	MaxBatchSize = 100

	SerialLength = 9
	MinSerial    = 100000000
	MaxSerial    = 999999999
)

type FaceValue int

const (
	Value200  FaceValue = 200
	Value500  FaceValue = 500
	Value1000 FaceValue = 1000
)

var durationHoursByValue = map[FaceValue]int{
	Value200:  24,
	Value500:  72,
	Value1000: 168,
}

// FaceValues lists the denominations in ascending order.
func FaceValues() []FaceValue {
	return []FaceValue{Value200, Value500, Value1000}
}

func NewFaceValue(v int) (FaceValue, error) {
	fv := FaceValue(v)
	if !fv.IsValid() {
		return 0, ErrInvalidValue
	}
	return fv, nil
}

func (v FaceValue) IsValid() bool {
	_, ok := durationHoursByValue[v]
	return ok
}

func (v FaceValue) Int() int { return int(v) }

func (v FaceValue) String() string { return strconv.Itoa(int(v)) }

// DurationHours is the access granted per activation for this denomination.
func (v FaceValue) DurationHours() int {
	return durationHoursByValue[v]
}

func (v FaceValue) Duration() time.Duration {
	return hoursToDuration(v.DurationHours())
}

type SerialNumber struct {
	value string
}

func NewSerialNumber(s string) (SerialNumber, error) {
	if len(s) != SerialLength || s[0] == '0' {
		return SerialNumber{}, ErrInvalidSerial
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return SerialNumber{}, ErrInvalidSerial
		}
	}
	return SerialNumber{value: s}, nil
}

func (s SerialNumber) String() string { return s.value }

func (s SerialNumber) IsZero() bool { return s.value == "" }

func hoursToDuration(h int) time.Duration {
	return time.Duration(h) * time.Hour
}
