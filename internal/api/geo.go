package api

import (
	"weather-api/internal/logger"
	"weather-api/internal/protocol"
)

// 城市名参数的两级上限：原始值按 maxCityRawLen 截断，解码值超过 maxCityNameLen 则整体拒绝
const (
	maxCityRawLen  = 128
	maxCityNameLen = 100
)

// handleGeo：GET /api/v1/geo?city=NAME
// 背景：名称做大小写敏感的精确匹配，坐标以 4 位小数输出
// 约束：缺参 400；解码后超长 400；未命中 404
func (a *API) handleGeo(req protocol.Request) protocol.Response {
	city, ok := protocol.QueryParam(req.RawQuery, "city", maxCityRawLen)
	if !ok {
		return errorResponse(400, "missing query param: city")
	}
	if len(city) > maxCityNameLen {
		return errorResponse(400, "city name too long")
	}
	loc, ok := a.ds.FindByName(city)
	if !ok {
		logger.L().Debug("geo_miss", "city", city)
		return errorResponse(404, "city not found")
	}
	logger.L().Debug("geo_hit", "city", loc.City, "lat", loc.Lat, "lon", loc.Lon)
	return jsonResponse(geoResult{
		City:    loc.City,
		Country: loc.Country,
		Lat:     fixed4(loc.Lat),
		Lon:     fixed4(loc.Lon),
	})
}
