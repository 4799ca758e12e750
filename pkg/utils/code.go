package utils

import (
	"errors"

	"github.com/speps/go-hashids/v2"
)

var coder *hashids.HashID

func init() {
	hd := hashids.NewData()
	hd.Salt = "verity-share"
	hd.MinLength = 8
	coder, _ = hashids.NewWithData(hd)
}

// ShareCode 雪花 ID 转短链码，用于对外分享
func ShareCode(id int64) string {
	code, err := coder.EncodeInt64([]int64{id})
	if err != nil {
		return ""
	}
	return code
}

func DecodeShareCode(code string) (int64, error) {
	ids, err := coder.DecodeInt64WithError(code)
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, errors.New("invalid share code")
	}
	return ids[0], nil
}
