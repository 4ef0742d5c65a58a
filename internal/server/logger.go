package server

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/color"
	"github.com/valyala/fasttemplate"
)

const errorLogFormat = "${time_rfc3339} ${status} ${method} ${uri} " +
	"id=${id} latency=${latency_human} error=${error}\n"

// ErrorLogger logs only failed requests, expanding errorLogFormat once
// per error. Successful requests pass through untouched.
func ErrorLogger() echo.MiddlewareFunc {
	template := fasttemplate.New(errorLogFormat, "${", "}")
	colorer := color.New()
	colorer.SetOutput(os.Stdout)
	pool := &sync.Pool{
		New: func() interface{} {
			return bytes.NewBuffer(make([]byte, 256))
		},
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err == nil {
				// skip non errors
				return nil
			}
			c.Error(err)
			stop := time.Now()

			buf := pool.Get().(*bytes.Buffer)
			buf.Reset()
			defer pool.Put(buf)

			req := c.Request()
			res := c.Response()
			if _, terr := template.ExecuteFunc(buf, func(w io.Writer, tag string) (int, error) {
				switch tag {
				case "time_rfc3339":
					return buf.WriteString(time.Now().Format(time.RFC3339))
				case "status":
					n := res.Status
					s := colorer.Green(n)
					switch {
					case n >= 500:
						s = colorer.Red(n)
					case n >= 400:
						s = colorer.Yellow(n)
					}
					return buf.WriteString(s)
				case "method":
					return buf.WriteString(req.Method)
				case "uri":
					return buf.WriteString(req.RequestURI)
				case "id":
					return buf.WriteString(res.Header().Get(echo.HeaderXRequestID))
				case "latency_human":
					return buf.WriteString(stop.Sub(start).String())
				case "latency":
					return buf.WriteString(strconv.FormatInt(int64(stop.Sub(start)), 10))
				case "error":
					// the error may contain invalid JSON e.g. `"`
					b, _ := json.Marshal(err.Error())
					return buf.Write(b[1 : len(b)-1])
				}
				return 0, nil
			}); terr != nil {
				return nil
			}

			_, _ = c.Logger().Output().Write(buf.Bytes())
			return nil
		}
	}
}
