package responder

// Messages maps status codes to the default message used by
// FromStatusCodeWith. Unknown is returned for codes without an entry.
type Messages struct {
	ByCode  map[uint16]string
	Unknown string
}

// DefaultMessages returns the English catalog used by FromStatusCode.
func DefaultMessages() Messages {
	return Messages{
		ByCode: map[uint16]string{
			400: "Bad request",
			401: "Unauthorized",
			403: "Forbidden",
			404: "Resource not found",
			500: "Internal server error",
		},
		Unknown: "Unknown error",
	}
}

// ChineseMessages returns a Simplified Chinese catalog with the same keys as
// DefaultMessages.
func ChineseMessages() Messages {
	return Messages{
		ByCode: map[uint16]string{
			400: "请求参数错误",
			401: "未授权",
			403: "禁止访问",
			404: "资源不存在",
			500: "服务器内部错误",
		},
		Unknown: "未知错误",
	}
}

// For returns the message registered for code.
func (m Messages) For(code uint16) string {
	if msg, ok := m.ByCode[code]; ok {
		return msg
	}
	return m.Unknown
}

func (m Messages) lookup(code uint16) (string, bool) {
	msg, ok := m.ByCode[code]
	return msg, ok
}
