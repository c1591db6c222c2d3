package api

import (
	"strconv"
	"time"

	"weather-api/internal/logger"
	"weather-api/internal/protocol"
)

// 坐标参数原始值的截断上限
const maxCoordRawLen = 64

// conditions：一组天气条件
type conditions struct {
	tempC       float64
	description string
}

// cityConditions：命中城市到天气条件的固定映射；未收录的命中城市与近邻未命中一律回退默认条件
var cityConditions = map[string]conditions{
	"Malmo":      {10.5, "Sunny"},
	"Gothenburg": {8.2, "Windy"},
	"Orebro":     {6.3, "Overcast"},
}

var defaultConditions = conditions{7.0, "Cloudy"}

// timeNow：时间源，测试可替换
var timeNow = time.Now

// handleWeather：GET /api/v1/weather?lat=X&lon=Y
// 背景：坐标解析失败按 0.0 处理（没有格式错误分支）；范围校验先于近邻匹配，纬度先于经度
// 约束：lat、lon 任一缺失即 400 且文案合并两参；范围外 400 且两轴文案不同；时间戳为秒级 UTC
func (a *API) handleWeather(req protocol.Request) protocol.Response {
	latRaw, okLat := protocol.QueryParam(req.RawQuery, "lat", maxCoordRawLen)
	lonRaw, okLon := protocol.QueryParam(req.RawQuery, "lon", maxCoordRawLen)
	if !okLat || !okLon {
		return errorResponse(400, "missing query params: lat, lon")
	}
	lat := parseCoord(latRaw)
	lon := parseCoord(lonRaw)
	if lat < -90 || lat > 90 {
		return errorResponse(400, "latitude out of range")
	}
	if lon < -180 || lon > 180 {
		return errorResponse(400, "longitude out of range")
	}

	cond := defaultConditions
	if loc, ok := a.ds.FindByCoords(lat, lon); ok {
		if c, found := cityConditions[loc.City]; found {
			cond = c
		}
		logger.L().Debug("weather_proximity_hit", "city", loc.City, "lat", lat, "lon", lon)
	}
	return jsonResponse(weatherResult{
		TempC:       fixed1(cond.tempC),
		Description: cond.description,
		UpdatedAt:   timeNow().UTC().Format(time.RFC3339),
	})
}

// parseCoord：坐标文本转浮点，任何解析失败回退 0.0
func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
