package dataset

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// datasetFile：TOML 数据集文件结构，记录位于 [[cities]] 表数组
type datasetFile struct {
	Cities []Location `toml:"cities"`
}

// Load：从 TOML 文件加载数据集
// 背景：允许不重新编译就替换城市表；加载时逐条校验，任意一条非法即整体失败
// 约束：文件至少包含一条记录
func Load(path string) (*Dataset, error) {
	var f datasetFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	if len(f.Cities) == 0 {
		return nil, fmt.Errorf("dataset %s: no cities", path)
	}
	for i, l := range f.Cities {
		if err := validate(l); err != nil {
			return nil, fmt.Errorf("dataset %s: record %d: %w", path, i, err)
		}
	}
	return New(f.Cities), nil
}

func validate(l Location) error {
	if l.City == "" {
		return errors.New("empty city name")
	}
	if len(l.Country) != 2 {
		return fmt.Errorf("country code %q: want 2 letters", l.Country)
	}
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("latitude %v out of range", l.Lat)
	}
	if l.Lon < -180 || l.Lon > 180 {
		return fmt.Errorf("longitude %v out of range", l.Lon)
	}
	return nil
}
