package domain

import "fmt"

// Group は名前でグループを検索します。
func (s Scene) Group(name string) (Group, error) {
	for _, g := range s.Groups {
		if g.Name == name {
			return g, nil
		}
	}
	return Group{}, fmt.Errorf("シーン '%s' にグループ '%s' は存在しません", s.Name, name)
}

// Task はIDでタスクを検索します。グループ宣言順に走査します。
func (s Scene) Task(id string) (Task, error) {
	for _, g := range s.Groups {
		for _, t := range g.Tasks {
			if t.ID == id {
				return t, nil
			}
		}
	}
	return Task{}, fmt.Errorf("シーン '%s' にタスク '%s' は存在しません", s.Name, id)
}

// AllTasks は全グループのタスクを宣言順で返します。
func (s Scene) AllTasks() []Task {
	var tasks []Task
	for _, g := range s.Groups {
		tasks = append(tasks, g.Tasks...)
	}
	return tasks
}

// TaskIDs はグループ内のタスクIDを宣言順で返します。
func (g Group) TaskIDs() []string {
	ids := make([]string, 0, len(g.Tasks))
	for _, t := range g.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
