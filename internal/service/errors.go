package service

import (
	"github.com/pkg/errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid = errors.New("参数错误")
	ErrUserNotFound = errors.New("用户不存在")
	ErrPostNotFound = errors.New("帖子不存在")
	ErrTagNotFound  = errors.New("标签不存在")
	ErrTagExist     = errors.New("标签已存在")
	UnExpectedError = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid: BadRequest,
	ErrUserNotFound: NotFound,
	ErrPostNotFound: NotFound,
	ErrTagNotFound:  NotFound,
	ErrTagExist:     BadRequest,
	UnExpectedError: InternalServerError,
}

// CodeOf 返回 err 链上业务错误对应的状态码，非业务错误返回 false
func CodeOf(err error) (int, bool) {
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return InternalServerError, false
}

func invalidParam(err error) error {
	return errors.Wrap(ErrParamInvalid, err.Error())
}
