package message

import (
	"time"

	"github.com/bytedance/sonic"
)

const TimeFormatString = "2006-01-02 15:04:05"

type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(TimeFormatString))
}

func (ts TimeStamp) Time() time.Time {
	parsedTime, _ := time.Parse(TimeFormatString, string(ts))
	return parsedTime
}

type RunRecord struct {
	RunUid
	StartAt      TimeStamp
	NumFaces     int
	Hands        int
	HandPairs    int
	Intermediate uint64
	Final        uint64
	Invalid      uint64
	CostTime     string
}

func NewRunRecord(str string) (newRunRecord RunRecord, err error) {
	err = sonic.UnmarshalString(str, &newRunRecord)
	return
}

func (r RunRecord) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}
