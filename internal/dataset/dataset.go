// 包 dataset：进程内只读城市数据集；启动时一次性构造注入，服务期间不再变更
package dataset

import "math"

// Location：一条城市记录
// 约束：Country 为两位国家码；Lat/Lon 为 WGS84 十进制度
type Location struct {
	City    string  `toml:"city"`
	Country string  `toml:"country"`
	Lat     float64 `toml:"lat"`
	Lon     float64 `toml:"lon"`
}

// proximityTolerance：坐标近邻匹配阈值（度），两个轴向都须严格小于该值才算命中
const proximityTolerance = 0.01

// Dataset：不可变的有序记录集合
// 背景：构造时拷贝传入切片，此后仅做只读线性扫描；记录量级为个位数，无需索引
type Dataset struct {
	locs []Location
}

// New：由记录切片构造数据集；输入被拷贝，调用方之后的修改不影响实例
func New(locs []Location) *Dataset {
	d := &Dataset{locs: make([]Location, len(locs))}
	copy(d.locs, locs)
	return d
}

// Default：内置数据集，未配置外部数据文件时使用
func Default() *Dataset {
	return New([]Location{
		{City: "Stockholm", Country: "SE", Lat: 59.3293, Lon: 18.0686},
		{City: "Orebro", Country: "SE", Lat: 59.2741, Lon: 15.2066},
		{City: "Malmo", Country: "SE", Lat: 55.6050, Lon: 13.0038},
		{City: "Gothenburg", Country: "SE", Lat: 57.7089, Lon: 11.9746},
		{City: "Uppsala", Country: "SE", Lat: 59.8586, Lon: 17.6389},
	})
}

// FindByName：按名称精确查找，大小写敏感
func (d *Dataset) FindByName(name string) (Location, bool) {
	for _, l := range d.locs {
		if l.City == name {
			return l, true
		}
	}
	return Location{}, false
}

// FindByCoords：按坐标近邻查找
// 约束：两轴偏差都严格小于阈值才命中；按记录顺序返回首个命中，不选最近者
func (d *Dataset) FindByCoords(lat, lon float64) (Location, bool) {
	for _, l := range d.locs {
		if math.Abs(l.Lat-lat) < proximityTolerance && math.Abs(l.Lon-lon) < proximityTolerance {
			return l, true
		}
	}
	return Location{}, false
}

// Len：记录条数
func (d *Dataset) Len() int { return len(d.locs) }

// Locations：返回记录副本，保持内部切片只读
func (d *Dataset) Locations() []Location {
	out := make([]Location, len(d.locs))
	copy(out, d.locs)
	return out
}
