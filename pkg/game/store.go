package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// yamlProp 一个以 YAML 格式保存在 gdata 中的对象属性
// manager 为 nil 时为降级模式：读取返回未找到，写入直接忽略
type yamlProp struct {
	manager  *gdata.Manager
	object   string
	property string
}

// load 读取并解析到 out
//
// 返回：
//   - bool: 是否存在已保存的数据
//   - error: 读取或解析失败
func (p yamlProp) load(out any) (bool, error) {
	if p.manager == nil || !p.manager.ObjectPropExists(p.object, p.property) {
		return false, nil
	}

	data, err := p.manager.LoadObjectProp(p.object, p.property)
	if err != nil {
		return false, fmt.Errorf("failed to load %s/%s: %w", p.object, p.property, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s/%s: %w", p.object, p.property, err)
	}
	return true, nil
}

// save 序列化 v 并写入
func (p yamlProp) save(v any) error {
	if p.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", p.object, p.property, err)
	}
	if err := p.manager.SaveObjectProp(p.object, p.property, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", p.object, p.property, err)
	}
	return nil
}
