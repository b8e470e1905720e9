package builtin

import "github.com/matzehuels/roadmap/pkg/roadmap"

func starter() roadmap.Document {
	return roadmap.Document{
		Title:    "深度学习入门",
		EndTitle: "终点",
		Items: []roadmap.ItemRecord{
			{
				ID: "python-basics", Title: "Python 基础", Category: "基础语言", Status: "must",
				Description: "深度学习的通用语言，重点掌握 Numpy 和 Pandas。",
				Resources: []roadmap.ResourceRecord{
					{Type: "video", Title: "Python 1小时快速入门", URL: "#"},
					{Type: "article", Title: "廖雪峰 Python 教程", URL: "#"},
				},
			},
			{
				ID: "math-basics", Title: "数学基础", Category: "理论基础", Status: "must",
				Description: "掌握线性代数（矩阵运算）、微积分（梯度下降）和概率论。",
				Resources: []roadmap.ResourceRecord{
					{Type: "article", Title: "3Blue1Brown 线性代数本质", URL: "#"},
				},
			},
			{
				ID: "pytorch-intro", Title: "PyTorch 入门", Category: "核心框架", Status: "must",
				Description: "学习 Tensor、Autograd 和神经网络构建。",
				Resources: []roadmap.ResourceRecord{
					{Type: "video", Title: "PyTorch 深度学习快速入门", URL: "https://www.bilibili.com/video/BV1hE411t7RN"},
					{Type: "doc", Title: "PyTorch 官方文档", URL: "https://pytorch.org/docs/stable/index.html"},
				},
			},
			{
				ID: "cv-basics", Title: "计算机视觉 (CV)", Category: "应用领域", Status: "must",
				Description: "了解卷积神经网络 (CNN)，图像分类、目标检测任务。",
				Resources: []roadmap.ResourceRecord{
					{Type: "video", Title: "CS231n 斯坦福公开课", URL: "#"},
				},
			},
			{
				ID: "yolo-project", Title: "实战：YOLO 目标检测", Category: "实验室", Status: "project",
				Description: "亲手部署一个目标检测模型，识别图片中的物体。",
				Resources: []roadmap.ResourceRecord{
					{Type: "code", Title: "YOLOv5 源码解析", URL: "#"},
					{Type: "article", Title: "如何训练自己的数据集", URL: "#"},
				},
			},
		},
	}
}
