// 包 version：构建信息
package version

// Commit：构建时通过 -ldflags "-X weather-api/internal/version.Commit=..." 注入
var Commit = "dev"
